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

/*
Package versions selects a concrete package version out of the versions a
manifest declares.

Matching is delegated to github.com/Masterminds/semver/v3; this package only
decides which of the matching versions wins and when the manifest's pinned
version is used instead.
*/
package versions

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// ParseRequirement parses a version requirement such as "^1" or ">=1.2, <2".
//
// An empty requirement yields nil, which matches every version.
func ParseRequirement(req string) (*semver.Constraints, error) {
	req = strings.TrimSpace(req)
	if req == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(req)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid version requirement %q", req)
	}
	return c, nil
}

// Satisfies reports whether v satisfies req. A nil requirement is satisfied
// by any version.
func Satisfies(v *semver.Version, req *semver.Constraints) bool {
	if v == nil {
		return false
	}
	if req == nil {
		return true
	}
	return req.Check(v)
}

// FindMatchingVersion returns the highest version in known that satisfies req,
// or nil if none does. The given slice is not modified.
func FindMatchingVersion(known []*semver.Version, req *semver.Constraints) *semver.Version {
	var best *semver.Version
	for _, v := range known {
		if !Satisfies(v, req) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	return best
}

// Resolve picks the version to download.
//
// The best match out of known wins. When known is empty or nothing in it
// satisfies req, the pinned version is returned, which may be nil.
func Resolve(known []*semver.Version, req *semver.Constraints, pinned *semver.Version) *semver.Version {
	if len(known) > 0 {
		if v := FindMatchingVersion(known, req); v != nil {
			return v
		}
	}
	return pinned
}
