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
	"crypto/tls"
	"net/http"
	"net/url"
	"sync"

	"github.com/pkg/errors"

	"github.com/just-install/just/internal/tlsutil"
	"github.com/just-install/just/internal/version"
)

// HTTPGetter is the default HTTP(/S) backend handler
type HTTPGetter struct {
	opts      options
	transport *http.Transport
	once      sync.Once
}

// Get performs a GET request and returns the response once headers arrived.
// Any status other than 2xx is an error.
func (g *HTTPGetter) Get(href string, options ...Option) (*http.Response, error) {
	// Create a local copy of options to avoid data races when Get is called concurrently
	opts := g.opts
	for _, opt := range options {
		opt(&opts)
	}
	return g.get(href, opts)
}

func (g *HTTPGetter) get(href string, opts options) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, href, nil)
	if err != nil {
		return nil, err
	}

	if opts.acceptHeader != "" {
		req.Header.Set("Accept", opts.acceptHeader)
	}

	req.Header.Set("User-Agent", version.GetUserAgent())
	if opts.userAgent != "" {
		req.Header.Set("User-Agent", opts.userAgent)
	}

	if opts.username != "" && opts.password != "" && g.sendCredentials(href, opts) {
		req.SetBasicAuth(opts.username, opts.password)
	}

	client, err := g.httpClient(opts)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Errorf("failed to fetch %s : %s", href, resp.Status)
	}
	return resp, nil
}

// sendCredentials makes sure credentials only go to the server they were
// configured for. Host includes the port, so different services on one
// machine do not share credentials.
func (g *HTTPGetter) sendCredentials(href string, opts options) bool {
	if opts.passCredentialsAll || opts.url == "" {
		return true
	}
	u1, err := url.Parse(opts.url)
	if err != nil {
		return false
	}
	u2, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u1.Scheme == u2.Scheme && u1.Host == u2.Host
}

// NewHTTPGetter constructs a valid http/https client as a Getter
func NewHTTPGetter(options ...Option) (Getter, error) {
	var client HTTPGetter

	for _, opt := range options {
		opt(&client.opts)
	}

	return &client, nil
}

func (g *HTTPGetter) httpClient(opts options) (*http.Client, error) {
	if opts.transport != nil {
		return &http.Client{
			Transport: opts.transport,
			Timeout:   opts.timeout,
		}, nil
	}

	if !opts.tls.IsZero() {
		// A dedicated transport keeps custom TLS material off the shared one.
		tlsConf, err := tlsutil.ClientConfig(opts.tls)
		if err != nil {
			return nil, errors.Wrap(err, "can't create TLS config for client")
		}
		return &http.Client{
			Transport: &http.Transport{
				DisableCompression: true,
				Proxy:              http.ProxyFromEnvironment,
				TLSClientConfig:    tlsConf,
			},
			Timeout: opts.timeout,
		}, nil
	}

	// Compression stays off so Content-Length matches the bytes on disk.
	g.once.Do(func() {
		g.transport = &http.Transport{
			DisableCompression: true,
			Proxy:              http.ProxyFromEnvironment,
			TLSClientConfig:    &tls.Config{},
		}
	})

	return &http.Client{
		Transport: g.transport,
		Timeout:   opts.timeout,
	}, nil
}
