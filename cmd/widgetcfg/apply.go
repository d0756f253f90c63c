// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"widgetcfg/pkg/editplan"
	"widgetcfg/pkg/widgetfile"
)

var applyCmd = &cobra.Command{
	Use:   "apply <plan.toml>",
	Short: "Apply a TOML edit plan to the manifest",
	Long: `Load a TOML edit plan and apply every entry to the manifest in one
pass. The plan is validated up front, so an invalid plan leaves the manifest
untouched. See the package documentation for the plan format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := editplan.Load(args[0])
		if err != nil {
			return decorate(err, "load edit plan", args[0])
		}
		return mutateManifest("apply plan "+args[0], func(wf *widgetfile.Widgetfile) error {
			return plan.Apply(wf)
		})
	},
}
