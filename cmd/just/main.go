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

package main // import "github.com/just-install/just/cmd/just"

import (
	"os"

	"github.com/just-install/just/internal/logging"
	"github.com/just-install/just/pkg/cli"
)

var settings = cli.New()

var logger = logging.NewLogger(os.Stderr, func() bool { return settings.Debug })

func main() {
	cmd, err := newRootCmd(os.Stdout, os.Args[1:])
	if err != nil {
		logger.Warnf("%+v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		logger.Debugf("%+v", err)
		os.Exit(1)
	}
}
