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

// Package action implements the operations behind the just commands.
package action

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/just-install/just/pkg/manifest"
	"github.com/just-install/just/pkg/versions"
)

// errMissingManifest indicates that a manifest path was not provided.
var errMissingManifest = errors.New("no manifest provided")

// load reads the manifest at path and parses the version requirement
// the caller was given.
func load(path, requirement string) (*manifest.Manifest, *semver.Constraints, error) {
	if path == "" {
		return nil, nil, errMissingManifest
	}
	m, err := manifest.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	req, err := versions.ParseRequirement(requirement)
	if err != nil {
		return nil, nil, err
	}
	return m, req, nil
}
