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
Package progress reports how many bytes of a transfer have been seen.

A Counter is the sink a transfer reports into; a Reader instruments any
io.Reader so that every successful read advances its Counter.
*/
package progress

import (
	"io"
	"sync/atomic"
)

// Counter accumulates transferred bytes.
type Counter interface {
	// Add advances the counter by n bytes.
	Add(n int64)
	// Finish marks the transfer as complete.
	Finish()
}

// Factory creates a Counter expecting total bytes.
type Factory func(total int64) Counter

// Reader wraps an io.Reader and reports every read to a Counter.
type Reader struct {
	r io.Reader
	c Counter
}

// NewReader returns a Reader reporting reads from r to c.
func NewReader(r io.Reader, c Counter) *Reader {
	return &Reader{r: r, c: c}
}

// Read implements io.Reader.
//
// The counter only advances for reads that succeeded or hit io.EOF; any
// other error from the wrapped reader is returned as-is.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF {
		return n, err
	}
	if n > 0 {
		r.c.Add(int64(n))
	}
	return n, err
}

// Discard is a Factory whose counters ignore everything.
func Discard(int64) Counter { return discard{} }

type discard struct{}

func (discard) Add(int64) {}
func (discard) Finish()   {}

// Tally is an in-memory Counter. It is safe for concurrent use.
type Tally struct {
	total    int64
	current  atomic.Int64
	finished atomic.Bool
}

// NewTally returns a Tally expecting total bytes.
func NewTally(total int64) *Tally {
	return &Tally{total: total}
}

func (t *Tally) Add(n int64) { t.current.Add(n) }

func (t *Tally) Finish() { t.finished.Store(true) }

// Total returns the expected number of bytes.
func (t *Tally) Total() int64 { return t.total }

// Current returns the number of bytes added so far.
func (t *Tally) Current() int64 { return t.current.Load() }

// Finished reports whether Finish has been called.
func (t *Tally) Finished() bool { return t.finished.Load() }
