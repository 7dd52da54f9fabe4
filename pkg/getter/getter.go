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

/*
Package getter provides the transports artifacts are fetched over.

A Getter returns the live response so that callers can stream the body and
inspect its headers; nothing is buffered in memory.
*/
package getter

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/just-install/just/internal/tlsutil"
	"github.com/just-install/just/pkg/cli"
)

// options are generic parameters to be provided to the getter during instantiation.
//
// Getters may or may not ignore these parameters as they are passed in.
type options struct {
	url                string
	tls                tlsutil.Options
	username           string
	password           string
	passCredentialsAll bool
	userAgent          string
	acceptHeader       string
	timeout            time.Duration
	transport          *http.Transport
}

// Option allows specifying various settings configurable by the user for overriding the defaults
// used when performing Get operations with the Getter.
type Option func(*options)

// WithURL informs the getter of the server the basic auth credentials belong to.
func WithURL(url string) Option {
	return func(opts *options) {
		opts.url = url
	}
}

// WithAcceptHeader sets the request's Accept header.
func WithAcceptHeader(header string) Option {
	return func(opts *options) {
		opts.acceptHeader = header
	}
}

// WithBasicAuth sets the request's Authorization header to use the provided credentials
func WithBasicAuth(username, password string) Option {
	return func(opts *options) {
		opts.username = username
		opts.password = password
	}
}

// WithPassCredentialsAll sends basic auth credentials to every host, not only
// the one named by WithURL.
func WithPassCredentialsAll(pass bool) Option {
	return func(opts *options) {
		opts.passCredentialsAll = pass
	}
}

// WithUserAgent sets the request's User-Agent header to use the provided agent name.
func WithUserAgent(userAgent string) Option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

// WithTLSOptions sets the client certificate, CA bundle and verification mode.
func WithTLSOptions(tls tlsutil.Options) Option {
	return func(opts *options) {
		opts.tls = tls
	}
}

// WithTimeout bounds the whole request including reading the body.
// Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// WithTransport sets the http.Transport to allow overwriting the HTTPGetter default.
func WithTransport(transport *http.Transport) Option {
	return func(opts *options) {
		opts.transport = transport
	}
}

// Getter is an interface to support GET to the specified URL.
type Getter interface {
	// Get opens href. On success the caller owns and must close the response body.
	Get(href string, options ...Option) (*http.Response, error)
}

// Constructor is the function for every getter which creates a specific instance
// according to the configuration
type Constructor func(options ...Option) (Getter, error)

// Provider represents any getter and the schemes that it supports.
//
// For example, an HTTP provider may provide one getter that handles both
// 'http' and 'https' schemes.
type Provider struct {
	Schemes []string
	New     Constructor
}

// Provides returns true if the given scheme is supported by this Provider.
func (p Provider) Provides(scheme string) bool {
	for _, i := range p.Schemes {
		if i == scheme {
			return true
		}
	}
	return false
}

// Providers is a collection of Provider objects.
type Providers []Provider

// ByScheme returns a Getter that handles the given scheme.
//
// If no provider handles this scheme, this will return an error.
func (p Providers) ByScheme(scheme string) (Getter, error) {
	for _, pp := range p {
		if pp.Provides(scheme) {
			return pp.New()
		}
	}
	return nil, errors.Errorf("scheme %q not supported", scheme)
}

// Getters returns the built-in providers, each constructed with extraOpts.
func Getters(extraOpts ...Option) Providers {
	return Providers{
		Provider{
			Schemes: []string{"http", "https"},
			New: func(options ...Option) (Getter, error) {
				return NewHTTPGetter(append(options, extraOpts...)...)
			},
		},
		Provider{
			Schemes: []string{"file"},
			New: func(options ...Option) (Getter, error) {
				return NewFileGetter(append(options, extraOpts...)...)
			},
		},
	}
}

// All returns the built-in providers configured from settings.
func All(settings *cli.EnvSettings) Providers {
	return Getters(
		WithUserAgent(settings.UserAgent),
		WithTimeout(settings.Timeout),
		WithBasicAuth(settings.Username, settings.Password),
		WithTLSOptions(settings.TLSOptions()),
	)
}
