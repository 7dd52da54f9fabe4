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

	"github.com/spf13/cobra"

	"github.com/just-install/just/pkg/action"
	"github.com/just-install/just/pkg/cli/require"
)

const downloadDesc = `
Download the archive described by a manifest into a local directory.

The version is the highest entry of the manifest's version list that meets
the --version requirement. When the manifest lists no versions, or none of
them match, the manifest's pinned download version is used instead.

The archive is saved under the name given by the URL fragment. Existing files
are never overwritten: remove or move them before downloading again.
`

func newDownloadCmd(out io.Writer) *cobra.Command {
	client := action.NewDownload(settings)

	cmd := &cobra.Command{
		Use:   "download [MANIFEST] [...]",
		Short: "download the archive of a package",
		Long:  downloadDesc,
		Args:  require.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client.Settings = settings
			client.Out = cmd.ErrOrStderr()
			client.Log = logger

			for _, path := range args {
				res, err := client.Run(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved %s %s to %s (%d bytes)\n", res.Package.Name, res.Version, res.CompressedPath, res.Size)
			}
			return nil
		},
	}

	client.AddFlags(cmd.Flags())

	return cmd
}
