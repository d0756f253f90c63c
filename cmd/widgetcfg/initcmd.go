// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"widgetcfg/pkg/widgetfile"
)

var initForce bool

const starterManifest = `<?xml version="1.0" encoding="UTF-8"?>
<widget xmlns="http://www.w3.org/ns/widgets" id="com.example.app" version="0.0.1">
    <name>HelloWorld</name>
    <description>A sample widget application.</description>
    <author email="dev@example.com" href="https://example.com">Example Author</author>
    <content src="index.html" />
    <access origin="*" />
</widget>
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter manifest",
	Long: `Write a minimal starter manifest to the target path (see --file).
Fails when the file already exists unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(manifestPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", manifestPath)
		}

		// Round-trip through the parser so the starter file is guaranteed
		// to be a manifest this tool can edit.
		wf, err := widgetfile.ParseBytes([]byte(starterManifest), manifestPath)
		if err != nil {
			return decorate(err, "initialize manifest", manifestPath)
		}
		if err := wf.Save(); err != nil {
			return decorate(err, "initialize manifest", manifestPath)
		}

		fmt.Println(SuccessStyle.Render("Created " + manifestPath))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing manifest")
}
