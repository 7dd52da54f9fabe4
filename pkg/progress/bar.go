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
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewBar returns a Factory drawing a terminal progress bar to out.
func NewBar(out io.Writer, description string) Factory {
	return func(total int64) Counter {
		return &bar{pb: progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)}
	}
}

type bar struct {
	pb *progressbar.ProgressBar
}

// Rendering errors are not transfer errors.
func (b *bar) Add(n int64) { _ = b.pb.Add64(n) }

func (b *bar) Finish() { _ = b.pb.Finish() }
