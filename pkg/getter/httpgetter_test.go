/*
Copyright The Helm Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package getter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-install/just/internal/tlsutil"
	"github.com/just-install/just/internal/version"
)

func TestHTTPGetter(t *testing.T) {
	g, err := NewHTTPGetter(WithURL("http://example.com"))
	require.NoError(t, err)

	_, ok := g.(*HTTPGetter)
	require.True(t, ok, "Expected NewHTTPGetter to produce an *HTTPGetter")

	timeout := time.Second * 5
	transport := &http.Transport{}
	tlsOpts := tlsutil.Options{CAFile: "ca.crt", InsecureSkipVerify: true}

	g, err = NewHTTPGetter(
		WithBasicAuth("I", "Am"),
		WithPassCredentialsAll(true),
		WithUserAgent("Groot"),
		WithTLSOptions(tlsOpts),
		WithTimeout(timeout),
		WithTransport(transport),
		WithAcceptHeader("application/gzip"),
	)
	require.NoError(t, err)

	hg := g.(*HTTPGetter)
	assert.Equal(t, "I", hg.opts.username)
	assert.Equal(t, "Am", hg.opts.password)
	assert.True(t, hg.opts.passCredentialsAll)
	assert.Equal(t, "Groot", hg.opts.userAgent)
	assert.Equal(t, tlsOpts, hg.opts.tls)
	assert.Equal(t, timeout, hg.opts.timeout)
	assert.Same(t, transport, hg.opts.transport)
	assert.Equal(t, "application/gzip", hg.opts.acceptHeader)
}

func TestDownload(t *testing.T) {
	expect := "Call me Ishmael"
	expectedUserAgent := "I am Groot"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultUserAgent := version.GetUserAgent()
		if r.UserAgent() != defaultUserAgent {
			t.Errorf("Expected '%s', got '%s'", defaultUserAgent, r.UserAgent())
		}
		w.Write([]byte(expect))
	}))
	defer srv.Close()

	g, err := All(newSettings()).ByScheme("http")
	require.NoError(t, err)

	resp, err := g.Get(srv.URL)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, expect, string(body))
	assert.Equal(t, int64(len(expect)), resp.ContentLength)

	// test with http server
	basicAuthSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "username" || password != "password" {
			t.Errorf("Expected request to use basic auth and for username == 'username' and password == 'password', got '%v', '%s', '%s'", ok, username, password)
		}
		if r.UserAgent() != expectedUserAgent {
			t.Errorf("Expected '%s', got '%s'", expectedUserAgent, r.UserAgent())
		}
		w.Write([]byte(expect))
	}))
	defer basicAuthSrv.Close()

	httpgetter, err := NewHTTPGetter(
		WithURL(basicAuthSrv.URL),
		WithBasicAuth("username", "password"),
		WithUserAgent(expectedUserAgent),
	)
	require.NoError(t, err)
	resp, err = httpgetter.Get(basicAuthSrv.URL + "/pkg.tar.gz#pkg")
	require.NoError(t, err)
	resp.Body.Close()
}

func TestDownloadCredentialsStayOnHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); ok {
			t.Error("credentials were sent to a foreign host")
		}
	}))
	defer srv.Close()

	g, err := NewHTTPGetter(
		WithURL("https://mirror.example.test"),
		WithBasicAuth("username", "password"),
	)
	require.NoError(t, err)
	resp, err := g.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestDownloadBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	g, err := NewHTTPGetter()
	require.NoError(t, err)

	_, err = g.Get(srv.URL + "/missing.tgz")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "404"), err.Error())
	assert.Contains(t, err.Error(), "/missing.tgz")
}

func TestHTTPGetterBadTLS(t *testing.T) {
	g, err := NewHTTPGetter(WithTLSOptions(tlsutil.Options{CAFile: "testdata/does-not-exist.crt"}))
	require.NoError(t, err)

	_, err = g.Get("https://example.test/pkg.tgz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TLS config")
}
