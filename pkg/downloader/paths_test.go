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
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleURL(t *testing.T) {
	v := semver.MustParse("1.2.3")

	assert.Equal(t, "https://x/1.2.3/a.tgz", AssembleURL("https://x/{version}/a.tgz", v))
	assert.Equal(t, "https://x/1.2.3/a-1.2.3.tgz#a", AssembleURL("https://x/{version}/a-{version}.tgz#a", v))
	assert.Equal(t, "https://x/latest/a.tgz", AssembleURL("https://x/latest/a.tgz", v))
	assert.Equal(t, "https://x/1.2.3-rc.1/a.tgz", AssembleURL("https://x/{version}/a.tgz", semver.MustParse("1.2.3-rc.1")))
}

func TestExtractPaths(t *testing.T) {
	tests := []struct {
		url          string
		compressed   string
		uncompressed string
	}{
		{"https://example.test/pkg/2.0.0/pkg.tar.gz#pkg", "pkg", "pkg.tar.gz"},
		{"https://host/path/archive.tar.gz#archive", "archive", "archive.tar.gz"},
		{"http://host/name#tag", "tag", "name"},
		{"https://host/a/b/c/rg-13.0.0-x86_64.zip#rg.zip", "rg.zip", "rg-13.0.0-x86_64.zip"},
		{"https://host/with%20space.tgz#local%20name", "local name", "with space.tgz"},
		{"https://host/name?token=abc#tag", "tag", "name"},
		{"file:///srv/mirror/pkg.tgz#pkg", "pkg", "pkg.tgz"},
		{"https://host/dir/a%2Fb.tgz#x", "x", "a/b.tgz"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			p, err := ExtractPaths(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.compressed, p.Compressed)
			assert.Equal(t, tt.uncompressed, p.Uncompressed)
		})
	}
}

func TestExtractPathsMalformed(t *testing.T) {
	for _, u := range []string{
		"https://host/path/archive.tar.gz",
		"https://host/path/archive.tar.gz#",
		"https://host#archive",
		"https://host/#archive",
		"https://host/dir/#archive",
		"scheme://host",
		"https://host/%zz#archive",
		"mailto:someone@example.test#archive",
	} {
		t.Run(u, func(t *testing.T) {
			_, err := ExtractPaths(u)
			require.Error(t, err)

			var malformed *MalformedURLError
			require.True(t, errors.As(err, &malformed), "got %T", err)
			assert.Equal(t, u, malformed.URL)
			assert.Contains(t, err.Error(), u)
		})
	}
}
