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
Package manifest describes a package's download source and the versions it
is published under.

A manifest may be written as TOML, YAML or JSON:

	[package]
	name = "ripgrep"

	[download]
	url = "https://example.com/ripgrep/{version}/ripgrep.tar.gz#ripgrep.tar.gz"
	version = "13.0.0"

	versions = ["12.1.1", "13.0.0"]

The "{version}" token in the download URL is replaced with the resolved
version. The URL fragment names the archive on disk and the last path segment
names its extracted content.
*/
package manifest
