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
Package downloader fetches a package archive described by a manifest.

Download resolves the version to fetch, substitutes it into the manifest's
URL template, streams the response into a newly created file and reports the
transferred bytes to a progress counter. An existing file is never
overwritten and nothing is retried: every failure is returned as one of the
typed errors in this package and a partially written file is left in place.

The download URL carries two names. Its last path segment names the content
once extracted, and its fragment, which no server ever sees, names the archive
as it is stored on disk:

	https://example.com/ripgrep/13.0.0/ripgrep.tar.gz#ripgrep-13.0.0.tar.gz
*/
package downloader
