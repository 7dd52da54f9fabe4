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

package downloader

import (
	"github.com/Masterminds/semver/v3"
)

// EventKind identifies a step of a download.
type EventKind int

const (
	// EventResolved is sent once the version and URL are known.
	EventResolved EventKind = iota
	// EventFetching is sent before the request is issued.
	EventFetching
	// EventWriting is sent once the destination file has been created.
	EventWriting
	// EventCompleted is sent after the last byte was written.
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventResolved:
		return "resolved"
	case EventFetching:
		return "fetching"
	case EventWriting:
		return "writing"
	case EventCompleted:
		return "completed"
	}
	return "unknown"
}

// Event describes the progress of a download. Fields are set once known.
type Event struct {
	Kind    EventKind
	Package string
	Version *semver.Version
	URL     string
	Path    string
	// Size is the declared length for EventWriting and the transferred
	// length for EventCompleted.
	Size int64
}

// Observer receives download events.
type Observer func(Event)
