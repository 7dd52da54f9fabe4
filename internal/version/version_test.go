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

package version

import (
	"strings"
	"testing"
)

func TestGetUserAgent(t *testing.T) {
	ua := GetUserAgent()
	if !strings.HasPrefix(ua, "just/") {
		t.Fatalf("unexpected user agent %q", ua)
	}
	if strings.Contains(ua, "/v") {
		t.Fatalf("user agent should not carry the v prefix: %q", ua)
	}
}

func TestGetStripsGoVersionUnderTest(t *testing.T) {
	if got := Get().GoVersion; got != "" {
		t.Fatalf("expected empty GoVersion under test, got %q", got)
	}
}

func TestGetVersionWithMetadata(t *testing.T) {
	defer func(m string) { metadata = m }(metadata)

	metadata = "dirty"
	if got, want := GetVersion(), version+"+dirty"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := GetUserAgent(); !strings.HasSuffix(got, "+dirty") {
		t.Fatalf("user agent should carry build metadata: %q", got)
	}
}
