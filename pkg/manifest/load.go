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

package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Format is the serialization a manifest is written in.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor returns the manifest format implied by a file name.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Errorf("unsupported manifest file %q: expected .toml, .yaml, .yml or .json", filename)
}

// LoadFile reads and validates the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read manifest %s", path)
	}
	m, err := Load(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load manifest %s", path)
	}
	return m, nil
}

// Load parses and validates manifest data in the given format.
func Load(data []byte, format Format) (*Manifest, error) {
	js, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := validate(js); err != nil {
		return nil, err
	}

	var f file
	if err := json.Unmarshal(js, &f); err != nil {
		return nil, errors.Wrap(err, "unable to decode manifest")
	}
	return f.manifest()
}

// toJSON normalizes every supported format to JSON so the schema and the
// decoder only ever see one representation.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var raw map[string]interface{}
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.Wrap(err, "unable to parse TOML")
		}
		return json.Marshal(raw)
	case FormatYAML, FormatJSON:
		js, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", strings.ToUpper(string(format)))
		}
		return js, nil
	}
	return nil, errors.Errorf("unknown manifest format %q", format)
}

func (f *file) manifest() (*Manifest, error) {
	m := &Manifest{
		Package: Package{
			Name:        f.Package.Name,
			Description: f.Package.Description,
			Homepage:    f.Package.Homepage,
		},
		Download: Download{URL: f.Download.URL},
	}

	if f.Download.Version != "" {
		v, err := semver.NewVersion(f.Download.Version)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pinned version %q", f.Download.Version)
		}
		m.Download.Version = v
	}

	var result *multierror.Error
	for _, raw := range f.Versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid version %q", raw))
			continue
		}
		m.Versions = append(m.Versions, v)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return m, nil
}
