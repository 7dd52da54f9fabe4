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
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// FileGetter serves file:// URLs from the local filesystem, which makes a
// directory usable as a download mirror.
type FileGetter struct {
	opts options
}

// NewFileGetter constructs a Getter for file:// URLs.
func NewFileGetter(options ...Option) (Getter, error) {
	var g FileGetter
	for _, opt := range options {
		opt(&g.opts)
	}
	return &g, nil
}

// Get opens the file named by href. The returned response carries the file
// size as its Content-Length.
func (g *FileGetter) Get(href string, _ ...Option) (*http.Response, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid file URL %q", href)
	}
	if u.Scheme != "file" {
		return nil, errors.Errorf("not a file URL: %s", href)
	}

	f, err := os.Open(filepath.FromSlash(u.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", href)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to fetch %s", href)
	}
	if fi.IsDir() {
		f.Close()
		return nil, errors.Errorf("failed to fetch %s : is a directory", href)
	}

	header := make(http.Header)
	header.Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.0",
		ProtoMajor:    1,
		Header:        header,
		Body:          f,
		ContentLength: fi.Size(),
	}, nil
}
