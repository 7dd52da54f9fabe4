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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-install/just/internal/logging"
	"github.com/just-install/just/pkg/downloader"
)

func TestDownloadRun(t *testing.T) {
	srv := newServer(t)
	path := writeManifest(t, srv.URL, "", "1.0.0", "1.2.0", "2.0.0")
	dest := filepath.Join(t.TempDir(), "nested", "downloads")

	var logs bytes.Buffer
	client := NewDownload(testSettings())
	client.Version = "^1"
	client.DestDir = dest
	client.Log = logging.NewLogger(&logs, nil)

	res, err := client.Run(path)
	require.NoError(t, err)

	assert.Equal(t, "pkg", res.Package.Name)
	assert.Equal(t, "1.2.0", res.Version.String())
	assert.Equal(t, int64(len(archive)), res.Size)
	assert.Equal(t, filepath.Join(dest, "pkg"), res.CompressedPath)
	assert.Equal(t, filepath.Join(dest, "pkg.tar.gz"), res.UncompressedPath)
	assert.Contains(t, logs.String(), "/pkg/1.2.0/pkg.tar.gz")

	b, err := os.ReadFile(res.CompressedPath)
	require.NoError(t, err)
	assert.Equal(t, archive, string(b))
}

func TestDownloadRunUsesSettingsDir(t *testing.T) {
	srv := newServer(t)
	path := writeManifest(t, srv.URL, "0.9.0")

	settings := testSettings()
	settings.DownloadDir = t.TempDir()

	var bar bytes.Buffer
	settings.NoProgress = false
	client := NewDownload(settings)
	client.Out = &bar

	res, err := client.Run(path)
	require.NoError(t, err)
	assert.Equal(t, "0.9.0", res.Version.String())
	assert.Equal(t, filepath.Join(settings.DownloadDir, "pkg"), res.CompressedPath)

	_, err = client.Run(path)
	var exists *downloader.FileExistsError
	assert.True(t, errors.As(err, &exists), "got %v", err)
}

func TestDownloadRunErrors(t *testing.T) {
	srv := newServer(t)

	client := NewDownload(testSettings())
	client.DestDir = t.TempDir()

	_, err := client.Run(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	client.Version = "not a requirement"
	_, err = client.Run(writeManifest(t, srv.URL, "", "1.0.0"))
	assert.Error(t, err)

	client.Version = "^3"
	_, err = client.Run(writeManifest(t, srv.URL, "", "1.0.0"))
	var resolution *downloader.ResolutionError
	assert.True(t, errors.As(err, &resolution), "got %v", err)
}

func TestDownloadRunWithoutSettings(t *testing.T) {
	t.Setenv("JUST_NO_PROGRESS", "true")
	srv := newServer(t)
	path := writeManifest(t, srv.URL, "1.0.0")

	client := &Download{DestDir: t.TempDir()}
	res, err := client.Run(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", res.Version.String())
	require.NotNil(t, client.Settings)
}
