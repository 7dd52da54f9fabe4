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

package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/just-install/just/pkg/downloader"
)

// DebugEnabledFunc is a function type that determines if debug logging is enabled
// We use a function because we want to check the setting at log time, not when the logger is created
type DebugEnabledFunc func() bool

// debugCheckFormatter drops debug entries unless debugging is enabled when
// the entry is written.
type debugCheckFormatter struct {
	formatter    logrus.Formatter
	debugEnabled DebugEnabledFunc
}

// Format implements logrus.Formatter.
func (f *debugCheckFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if e.Level >= logrus.DebugLevel && (f.debugEnabled == nil || !f.debugEnabled()) {
		return nil, nil
	}
	return f.formatter.Format(e)
}

// NewLogger creates a new logger writing to out with dynamic debug checking.
func NewLogger(out io.Writer, debugEnabled DebugEnabledFunc) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	// Always use DebugLevel here to allow all messages through
	// Our formatter will do the filtering
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&debugCheckFormatter{
		formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    true,
		},
		debugEnabled: debugEnabled,
	})
	return l
}

// DownloadObserver logs download events to l.
func DownloadObserver(l logrus.FieldLogger) downloader.Observer {
	return func(e downloader.Event) {
		fields := logrus.Fields{"package": e.Package}
		if e.Version != nil {
			fields["version"] = e.Version.String()
		}
		if e.URL != "" {
			fields["url"] = e.URL
		}
		if e.Path != "" {
			fields["path"] = e.Path
		}

		entry := l.WithFields(fields)
		switch e.Kind {
		case downloader.EventResolved:
			entry.Debug("resolved download")
		case downloader.EventFetching:
			entry.Infof("Downloading from %s...", e.URL)
		case downloader.EventWriting:
			entry.WithField("size", e.Size).Infof("Downloading into %s", e.Path)
		case downloader.EventCompleted:
			entry.WithField("size", e.Size).Infof("Download of '%s' has been completed.", e.Package)
		}
	}
}
