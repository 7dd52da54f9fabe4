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
	"github.com/Masterminds/semver/v3"
)

// VersionPlaceholder is substituted with the resolved version in a download URL.
const VersionPlaceholder = "{version}"

// Package is the identity of a package.
type Package struct {
	// Name is the package name. Required.
	Name string
	// Description is a one line summary of the package.
	Description string
	// Homepage is the project URL.
	Homepage string
}

// Download describes where a package is fetched from.
type Download struct {
	// URL is the download URL template.
	URL string
	// Version is the pinned version used when no known version matches.
	Version *semver.Version
}

// Manifest describes one package.
type Manifest struct {
	Package  Package
	Download Download
	// Versions lists the published versions in declaration order.
	Versions []*semver.Version
}

// The on-disk shape of a manifest. Versions stay strings until validated.
type file struct {
	Package  packageFile  `json:"package"`
	Download downloadFile `json:"download"`
	Versions []string     `json:"versions,omitempty"`
}

type packageFile struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
}

type downloadFile struct {
	URL     string `json:"url"`
	Version string `json:"version,omitempty"`
}
