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
)

// ResolutionError is returned when neither a known version satisfies the
// requirement nor a pinned version is declared.
type ResolutionError struct {
	Package     string
	Requirement string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("no download URL or valid version given for package %q", e.Package)
	if e.Requirement != "" {
		msg += fmt.Sprintf(" (requirement %q)", e.Requirement)
	}
	return msg
}

// MalformedURLError is returned when a download URL cannot be parsed or does
// not name both local files.
type MalformedURLError struct {
	URL    string
	Reason string
	Err    error
}

func (e *MalformedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed download URL %q: %s: %s", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed download URL %q: %s", e.URL, e.Reason)
}

func (e *MalformedURLError) Unwrap() error { return e.Err }

// TransportError is returned when the request fails or the server refuses it.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to download %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MissingMetadataError is returned when the response lacks a numeric
// Content-Length header.
type MissingMetadataError struct {
	URL   string
	Value string
}

func (e *MissingMetadataError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("no content length given by %s: %q is not a byte count", e.URL, e.Value)
	}
	return fmt.Sprintf("no content length given by %s", e.URL)
}

// FileExistsError is returned when the destination is already occupied.
type FileExistsError struct {
	Path string
	Err  error
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("could not open compressed path %s: file already exists", e.Path)
}

func (e *FileExistsError) Unwrap() error { return e.Err }

// IOError is returned for any other failure to create, write or close the
// destination file, or to read the response body.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SizeMismatchError is returned when the transferred byte count differs from
// the Content-Length the server declared.
type SizeMismatchError struct {
	Path     string
	Expected int64
	Actual   int64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("download of %s is incomplete: expected %d bytes, got %d", e.Path, e.Expected, e.Actual)
}
