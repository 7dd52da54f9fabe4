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
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/just-install/just/pkg/manifest"
)

// Paths are the local file names derived from a download URL.
type Paths struct {
	// Compressed names the archive as downloaded.
	Compressed string
	// Uncompressed names the archive's content once extracted.
	Uncompressed string
}

// AssembleURL replaces every version placeholder in template with v.
func AssembleURL(template string, v *semver.Version) string {
	return strings.ReplaceAll(template, manifest.VersionPlaceholder, v.String())
}

// ExtractPaths derives the local file names from a download URL: the
// fragment names the compressed archive, the last path segment its
// uncompressed content. Both must be present.
//
// No file extension is added or removed.
func ExtractPaths(rawURL string) (Paths, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Paths{}, &MalformedURLError{URL: rawURL, Reason: "cannot be parsed", Err: err}
	}

	segments := strings.Split(u.EscapedPath(), "/")
	name, err := url.PathUnescape(segments[len(segments)-1])
	if err != nil {
		return Paths{}, &MalformedURLError{URL: rawURL, Reason: "final path segment cannot be unescaped", Err: err}
	}
	if name == "" {
		return Paths{}, &MalformedURLError{URL: rawURL, Reason: "path has no final segment to name the uncompressed file"}
	}
	if u.Fragment == "" {
		return Paths{}, &MalformedURLError{URL: rawURL, Reason: "fragment to name the compressed file is missing"}
	}

	return Paths{Compressed: u.Fragment, Uncompressed: name}, nil
}
