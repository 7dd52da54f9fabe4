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

// Package version reports the build of the just binary.
package version

import (
	"flag"
	"runtime"
	"strings"
)

var (
	// version is overridden with -ldflags at release time.
	version = "v0.4"

	metadata     = ""
	gitCommit    = ""
	gitTreeState = ""
)

// BuildInfo is what 'just version' prints.
type BuildInfo struct {
	Version      string `json:"version,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
	GitTreeState string `json:"git_tree_state,omitempty"`
	GoVersion    string `json:"go_version,omitempty"`
}

// GetVersion returns the release, with build metadata appended when set.
func GetVersion() string {
	if metadata == "" {
		return version
	}
	return version + "+" + metadata
}

// GetUserAgent returns the User-Agent just sends with every download.
func GetUserAgent() string {
	return "just/" + strings.TrimPrefix(GetVersion(), "v")
}

// Get returns the build info. GoVersion is left empty under 'go test' so
// command output stays stable.
func Get() BuildInfo {
	info := BuildInfo{
		Version:      GetVersion(),
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
	}
	if flag.Lookup("test.v") == nil {
		info.GoVersion = runtime.Version()
	}
	return info
}
