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
Package cli describes the operating environment for the just CLI.

Settings are read from JUST_* environment variables first and may then be
overridden by command line flags.
*/
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/just-install/just/internal/tlsutil"
	"github.com/just-install/just/internal/version"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Debug indicates whether or not just is running in Debug mode.
	Debug bool
	// DownloadDir is the directory archives are written into. Empty means
	// the working directory.
	DownloadDir string
	// Timeout bounds a whole HTTP transfer. Zero disables it.
	Timeout time.Duration
	// NoProgress disables the progress bar.
	NoProgress bool
	// UserAgent overrides the User-Agent header sent to download servers.
	UserAgent string

	// Username and Password are sent as basic auth credentials.
	Username string
	Password string

	// CertFile, KeyFile and CAFile identify the client to TLS servers.
	CertFile string
	KeyFile  string
	CAFile   string
	// InsecureSkipTLSVerify disables server certificate checks.
	InsecureSkipTLSVerify bool
}

// New returns settings populated from the environment.
func New() *EnvSettings {
	return &EnvSettings{
		Debug:                 envBoolOr("JUST_DEBUG", false),
		DownloadDir:           envOr("JUST_DOWNLOAD_DIR", ""),
		Timeout:               envDurationOr("JUST_TIMEOUT", 0),
		NoProgress:            envBoolOr("JUST_NO_PROGRESS", false),
		UserAgent:             envOr("JUST_USER_AGENT", version.GetUserAgent()),
		Username:              os.Getenv("JUST_USERNAME"),
		Password:              os.Getenv("JUST_PASSWORD"),
		CertFile:              os.Getenv("JUST_CERT_FILE"),
		KeyFile:               os.Getenv("JUST_KEY_FILE"),
		CAFile:                os.Getenv("JUST_CA_FILE"),
		InsecureSkipTLSVerify: envBoolOr("JUST_INSECURE_SKIP_TLS_VERIFY", false),
	}
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.StringVar(&s.DownloadDir, "download-dir", s.DownloadDir, "directory downloaded archives are written into")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "time to wait for a download to complete, 0 waits forever")
	fs.BoolVar(&s.NoProgress, "no-progress", s.NoProgress, "do not draw a progress bar")
	fs.StringVar(&s.UserAgent, "user-agent", s.UserAgent, "User-Agent header sent with every request")
	fs.StringVar(&s.Username, "username", s.Username, "download server username")
	fs.StringVar(&s.Password, "password", s.Password, "download server password")
	fs.StringVar(&s.CertFile, "cert-file", s.CertFile, "identify HTTPS client using this SSL certificate file")
	fs.StringVar(&s.KeyFile, "key-file", s.KeyFile, "identify HTTPS client using this SSL key file")
	fs.StringVar(&s.CAFile, "ca-file", s.CAFile, "verify certificates of HTTPS-enabled servers using this CA bundle")
	fs.BoolVar(&s.InsecureSkipTLSVerify, "insecure-skip-tls-verify", s.InsecureSkipTLSVerify, "skip tls certificate checks for the download")
}

// TLSOptions returns the TLS material configured for downloads.
func (s *EnvSettings) TLSOptions() tlsutil.Options {
	return tlsutil.Options{
		CertFile:           s.CertFile,
		KeyFile:            s.KeyFile,
		CAFile:             s.CAFile,
		InsecureSkipVerify: s.InsecureSkipTLSVerify,
	}
}

// EnvVars returns the effective settings keyed by their environment variable.
// Credentials are never echoed.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"JUST_BIN":                      os.Args[0],
		"JUST_DEBUG":                    fmt.Sprint(s.Debug),
		"JUST_DOWNLOAD_DIR":             s.DownloadDir,
		"JUST_TIMEOUT":                  s.Timeout.String(),
		"JUST_NO_PROGRESS":              fmt.Sprint(s.NoProgress),
		"JUST_USER_AGENT":               s.UserAgent,
		"JUST_USERNAME":                 s.Username,
		"JUST_CERT_FILE":                s.CertFile,
		"JUST_KEY_FILE":                 s.KeyFile,
		"JUST_CA_FILE":                  s.CAFile,
		"JUST_INSECURE_SKIP_TLS_VERIFY": fmt.Sprint(s.InsecureSkipTLSVerify),
	}
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envBoolOr(name string, def bool) bool {
	if name == "" {
		return def
	}
	envVal := envOr(name, strconv.FormatBool(def))
	ret, err := strconv.ParseBool(envVal)
	if err != nil {
		return def
	}
	return ret
}

func envDurationOr(name string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
