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

package downloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"

	"github.com/just-install/just/pkg/getter"
	"github.com/just-install/just/pkg/manifest"
	"github.com/just-install/just/pkg/progress"
	"github.com/just-install/just/pkg/versions"
)

// Result describes a finished download.
type Result struct {
	// Package is the manifest's package.
	Package *manifest.Package
	// Version is the version that was downloaded.
	Version *semver.Version
	// Size is the number of bytes written to CompressedPath.
	Size int64
	// CompressedPath is the downloaded archive.
	CompressedPath string
	// UncompressedPath is where the archive's content is meant to be extracted.
	UncompressedPath string
}

// Downloader downloads the archive a manifest describes.
//
// The zero value is not usable; Getters must be set.
type Downloader struct {
	// Getters provide the transport for each URL scheme.
	Getters getter.Providers
	// Options are passed to every Get.
	Options []getter.Option
	// DestDir is the directory files are created in. Empty means the
	// working directory. Names taken from a URL never escape it.
	DestDir string
	// Progress creates the counter a transfer reports to. Nil discards progress.
	Progress progress.Factory
	// Observer receives events as the download proceeds. May be nil.
	Observer Observer
}

// ResolveURL returns the download URL and version for m under req.
//
// A nil req accepts any version.
func ResolveURL(m *manifest.Manifest, req *semver.Constraints) (string, *semver.Version, error) {
	v := versions.Resolve(m.Versions, req, m.Download.Version)
	if v == nil {
		e := &ResolutionError{Package: m.Package.Name}
		if req != nil {
			e.Requirement = req.String()
		}
		return "", nil, e
	}
	return AssembleURL(m.Download.URL, v), v, nil
}

// Download fetches the archive m describes into a new file.
//
// The destination must not exist. On failure the returned error is one of
// *ResolutionError, *MalformedURLError, *TransportError,
// *MissingMetadataError, *FileExistsError, *IOError or *SizeMismatchError,
// and whatever has been written so far stays on disk.
func (d *Downloader) Download(m *manifest.Manifest, req *semver.Constraints) (*Result, error) {
	href, v, err := ResolveURL(m, req)
	if err != nil {
		return nil, err
	}
	d.notify(Event{Kind: EventResolved, Package: m.Package.Name, Version: v, URL: href})

	d.notify(Event{Kind: EventFetching, Package: m.Package.Name, Version: v, URL: href})
	resp, err := d.fetch(href)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	total, err := contentLength(href, resp.Header)
	if err != nil {
		return nil, err
	}

	paths, err := ExtractPaths(href)
	if err != nil {
		return nil, err
	}
	paths, err = d.localPaths(href, paths)
	if err != nil {
		return nil, err
	}

	dest, err := createExclusive(paths.Compressed)
	if err != nil {
		return nil, err
	}
	d.notify(Event{Kind: EventWriting, Package: m.Package.Name, Version: v, URL: href, Path: paths.Compressed, Size: total})

	newCounter := d.Progress
	if newCounter == nil {
		newCounter = progress.Discard
	}
	counter := newCounter(total)

	body := &bodyReader{r: resp.Body}
	size, err := io.Copy(dest, progress.NewReader(body, counter))
	if err != nil {
		dest.Close()
		if body.err != nil {
			return nil, &TransportError{URL: href, Err: body.err}
		}
		return nil, &IOError{Op: "write", Path: paths.Compressed, Err: err}
	}
	if err := dest.Close(); err != nil {
		return nil, &IOError{Op: "close", Path: paths.Compressed, Err: err}
	}
	counter.Finish()

	if size != total {
		return nil, &SizeMismatchError{Path: paths.Compressed, Expected: total, Actual: size}
	}
	d.notify(Event{Kind: EventCompleted, Package: m.Package.Name, Version: v, URL: href, Path: paths.Compressed, Size: size})

	return &Result{
		Package:          &m.Package,
		Version:          v,
		Size:             size,
		CompressedPath:   paths.Compressed,
		UncompressedPath: paths.Uncompressed,
	}, nil
}

func (d *Downloader) fetch(href string) (*http.Response, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, &MalformedURLError{URL: href, Reason: "cannot be parsed", Err: err}
	}
	g, err := d.Getters.ByScheme(u.Scheme)
	if err != nil {
		return nil, &TransportError{URL: href, Err: err}
	}
	resp, err := g.Get(href, d.Options...)
	if err != nil {
		return nil, &TransportError{URL: href, Err: err}
	}
	return resp, nil
}

// localPaths places both names under DestDir. Directories in a name are
// resolved inside DestDir; the final element is kept literal so that
// whatever already sits at that name, a symlink included, is seen by the
// exclusive create.
func (d *Downloader) localPaths(href string, p Paths) (Paths, error) {
	root := d.DestDir
	if root == "" {
		root = "."
	}
	compressed, err := localPath(href, root, p.Compressed)
	if err != nil {
		return Paths{}, err
	}
	uncompressed, err := localPath(href, root, p.Uncompressed)
	if err != nil {
		return Paths{}, err
	}
	return Paths{Compressed: compressed, Uncompressed: uncompressed}, nil
}

func localPath(href, root, name string) (string, error) {
	dir, file := filepath.Split(filepath.FromSlash(name))
	if file == "" || file == "." || file == ".." {
		return "", &MalformedURLError{URL: href, Reason: fmt.Sprintf("%q does not name a file", name)}
	}
	parent, err := securejoin.SecureJoin(root, dir)
	if err != nil {
		return "", &IOError{Op: "resolve", Path: name, Err: err}
	}
	return filepath.Join(parent, file), nil
}

func (d *Downloader) notify(e Event) {
	if d.Observer != nil {
		d.Observer(e)
	}
}

// bodyReader records the error of a failed read of the response body so it
// can be told apart from a failed write.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF {
		b.err = err
	}
	return n, err
}

// contentLength reads the declared body size. It only seeds the progress
// counter's total and the final size check.
func contentLength(href string, h http.Header) (int64, error) {
	v := h.Get("Content-Length")
	if v == "" {
		return 0, &MissingMetadataError{URL: href}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, &MissingMetadataError{URL: href, Value: v}
	}
	return n, nil
}

// createExclusive creates path for writing and fails if anything exists there.
func createExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err == nil {
		return f, nil
	}
	if os.IsExist(err) {
		return nil, &FileExistsError{Path: path, Err: err}
	}
	return nil, &IOError{Op: "create", Path: path, Err: errors.Wrap(err, "could not open compressed path")}
}
