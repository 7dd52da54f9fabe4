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

package main

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/just-install/just/pkg/action"
	"github.com/just-install/just/pkg/cli/require"
)

const versionsDesc = `
List the versions a manifest knows about.

Each row shows whether the version meets the --version requirement, whether
it is the manifest's pinned download version, and whether 'just download'
would select it.
`

func newVersionsCmd(out io.Writer) *cobra.Command {
	client := action.NewVersions()

	cmd := &cobra.Command{
		Use:   "versions [MANIFEST]",
		Short: "list the known versions of a package",
		Long:  versionsDesc,
		Args:  require.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			infos, err := client.Run(args[0])
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(out, "No versions found")
				return nil
			}
			fmt.Fprintln(out, formatVersions(infos))
			return nil
		},
	}

	client.AddFlags(cmd.Flags())

	return cmd
}

func formatVersions(infos []action.VersionInfo) string {
	table := uitable.New()
	table.AddRow("VERSION", "SATISFIES", "PINNED", "SELECTED")
	for _, i := range infos {
		table.AddRow(i.Version.String(), mark(i.Satisfies), mark(i.Pinned), mark(i.Selected))
	}
	return table.String()
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
