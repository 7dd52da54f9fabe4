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

package progress

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderCountsEveryByte(t *testing.T) {
	const payload = "the quick brown fox jumps over the lazy dog"

	tally := NewTally(int64(len(payload)))
	r := NewReader(iotest.OneByteReader(strings.NewReader(payload)), tally)

	var out bytes.Buffer
	n, err := io.Copy(&out, r)
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, out.String())
	assert.Equal(t, int64(len(payload)), tally.Current())
	assert.Equal(t, int64(len(payload)), tally.Total())
	assert.False(t, tally.Finished())
}

func TestReaderCountsDataReturnedWithEOF(t *testing.T) {
	tally := NewTally(3)
	r := NewReader(iotest.DataErrReader(strings.NewReader("abc")), tally)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
	assert.Equal(t, int64(3), tally.Current())
}

type failingReader struct {
	n   int
	err error
}

func (f failingReader) Read(p []byte) (int, error) { return f.n, f.err }

func TestReaderErrorLeavesCounter(t *testing.T) {
	boom := errors.New("connection reset")
	tally := NewTally(10)
	tally.Add(4)

	r := NewReader(failingReader{n: 2, err: boom}, tally)
	n, err := r.Read(make([]byte, 8))

	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(4), tally.Current())
}

func TestTallyFinish(t *testing.T) {
	tally := NewTally(0)
	tally.Finish()
	assert.True(t, tally.Finished())
}

func TestBar(t *testing.T) {
	var out bytes.Buffer
	c := NewBar(&out, "downloading")(5)
	c.Add(2)
	c.Add(3)
	c.Finish()
	assert.Contains(t, out.String(), "downloading")
}

func TestDiscard(t *testing.T) {
	c := Discard(10)
	c.Add(10)
	c.Finish()
}
