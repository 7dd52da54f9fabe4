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
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/pflag"

	"github.com/just-install/just/pkg/versions"
)

// VersionInfo describes one version a manifest knows about.
type VersionInfo struct {
	Version *semver.Version
	// Satisfies is true when the version meets the requirement.
	Satisfies bool
	// Pinned is true for the manifest's fallback version.
	Pinned bool
	// Selected is true for the version a download would fetch.
	Selected bool
}

// Versions is the action for listing the versions of a manifest.
//
// It provides the implementation of 'just versions'.
type Versions struct {
	// Version is the version requirement to evaluate.
	Version string
}

// NewVersions creates a new Versions object.
func NewVersions() *Versions {
	return &Versions{}
}

// Run lists the known versions of the manifest at manifestPath in
// declaration order. A pinned version that is not also listed comes last.
func (v *Versions) Run(manifestPath string) ([]VersionInfo, error) {
	m, req, err := load(manifestPath, v.Version)
	if err != nil {
		return nil, err
	}

	selected := versions.Resolve(m.Versions, req, m.Download.Version)
	pinned := m.Download.Version

	var out []VersionInfo
	pinnedListed := false
	for _, ver := range m.Versions {
		info := VersionInfo{
			Version:   ver,
			Satisfies: versions.Satisfies(ver, req),
			Pinned:    pinned != nil && ver.Equal(pinned),
			Selected:  selected != nil && ver.Equal(selected),
		}
		pinnedListed = pinnedListed || info.Pinned
		out = append(out, info)
	}
	if pinned != nil && !pinnedListed {
		out = append(out, VersionInfo{
			Version:   pinned,
			Satisfies: versions.Satisfies(pinned, req),
			Pinned:    true,
			Selected:  selected != nil && pinned.Equal(selected),
		})
	}
	return out, nil
}

// AddFlags binds the versions flags to f.
func (v *Versions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&v.Version, "version", "", "version requirement to check the known versions against")
}
