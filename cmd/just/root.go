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
	"io"

	"github.com/spf13/cobra"
)

var globalUsage = `Download packages described by a manifest.

A manifest names a package, a download URL template and the versions that
can be substituted into it:

    package:
      name: ripgrep
    download:
      url: https://example.com/ripgrep/{version}/ripgrep.tar.gz#ripgrep-{version}
      version: 13.0.0
    versions: [12.1.1, 13.0.0]

Manifests may be written in TOML, YAML or JSON.

Common actions for just:

- just download:  download the archive of a package
- just versions:  list the versions a manifest knows about

Environment variables:

| Name                           | Description                                                  |
|--------------------------------|--------------------------------------------------------------|
| $JUST_DEBUG                    | indicate whether or not just is running in Debug mode        |
| $JUST_DOWNLOAD_DIR             | set the directory downloaded archives are written into       |
| $JUST_TIMEOUT                  | set the time a download may take, e.g. 5m (default none)     |
| $JUST_NO_PROGRESS              | disable the progress bar                                     |
| $JUST_USER_AGENT               | set the User-Agent sent to download servers                  |
| $JUST_USERNAME                 | set the basic auth username sent to download servers         |
| $JUST_PASSWORD                 | set the basic auth password sent to download servers         |
| $JUST_CERT_FILE                | set the client certificate used for HTTPS downloads          |
| $JUST_KEY_FILE                 | set the client key used for HTTPS downloads                  |
| $JUST_CA_FILE                  | set the CA bundle used to verify download servers            |
| $JUST_INSECURE_SKIP_TLS_VERIFY | skip certificate verification of download servers (insecure) |
`

func newRootCmd(out io.Writer, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "just",
		Short:        "The just package downloader.",
		Long:         globalUsage,
		SilenceUsage: true,
	}
	flags := cmd.PersistentFlags()

	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execution.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	cmd.AddCommand(
		newDownloadCmd(out),
		newVersionsCmd(out),
		newEnvCmd(out),
		newVersionCmd(out),
	)

	return cmd, nil
}
