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

package action

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/just-install/just/internal/logging"
	"github.com/just-install/just/pkg/cli"
	"github.com/just-install/just/pkg/downloader"
	"github.com/just-install/just/pkg/getter"
	"github.com/just-install/just/pkg/progress"
)

// Download is the action for fetching the archive a manifest describes.
//
// It provides the implementation of 'just download'.
type Download struct {
	// Settings supplies the download directory and transport options.
	// Nil means the settings read from the environment.
	Settings *cli.EnvSettings

	// Version is the version requirement. Empty selects the latest version.
	Version string
	// DestDir overrides Settings.DownloadDir.
	DestDir string

	// Out receives the progress bar.
	Out io.Writer
	// Log receives download events. Nil disables logging.
	Log logrus.FieldLogger
	// Getters overrides the transports built from Settings.
	Getters getter.Providers
}

// NewDownload creates a new Download object with the given configuration.
func NewDownload(settings *cli.EnvSettings) *Download {
	return &Download{Settings: settings}
}

// Run loads the manifest at manifestPath and downloads its archive.
func (d *Download) Run(manifestPath string) (*downloader.Result, error) {
	m, req, err := load(manifestPath, d.Version)
	if err != nil {
		return nil, err
	}
	if d.Settings == nil {
		d.Settings = cli.New()
	}

	dest := d.DestDir
	if dest == "" {
		dest = d.Settings.DownloadDir
	}
	if dest != "" {
		if err := os.MkdirAll(dest, 0755); err != nil {
			return nil, errors.Wrapf(err, "failed to create download directory %s", dest)
		}
	}

	dl := &downloader.Downloader{
		Getters:  d.Getters,
		DestDir:  dest,
		Progress: progress.Discard,
	}
	if dl.Getters == nil {
		dl.Getters = getter.All(d.Settings)
	}
	if !d.Settings.NoProgress && d.Out != nil {
		dl.Progress = progress.NewBar(d.Out, m.Package.Name)
	}
	if d.Log != nil {
		dl.Observer = logging.DownloadObserver(d.Log)
	}

	return dl.Download(m, req)
}

// AddFlags binds the download flags to f.
func (d *Download) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&d.Version, "version", "", "version requirement such as '^1.2' or '>=2, <3'. If unset, the latest version is used")
	f.StringVarP(&d.DestDir, "destination", "d", "", "location to write the archive. Defaults to the download directory setting")
}
