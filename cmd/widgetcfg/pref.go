// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"widgetcfg/pkg/widgetfile"
)

var (
	prefPlatform string

	prefCmd = &cobra.Command{
		Use:   "pref",
		Short: "Manage preferences",
	}

	prefSetCmd = &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a preference (upsert)",
		Long: `Set a preference in the manifest. Without --platform the preference
is root-scoped; with --platform it lives inside the named <platform> scope,
which is created on first use. At most one preference with a given name
exists per scope.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set preference "+args[0], func(wf *widgetfile.Widgetfile) error {
				if prefPlatform != "" {
					wf.SetPlatformPreference(prefPlatform, args[0], args[1])
				} else {
					wf.SetPreference(args[0], args[1])
				}
				return nil
			})
		},
	}
)

func init() {
	prefSetCmd.Flags().StringVarP(&prefPlatform, "platform", "p", "", "platform scope (e.g. ios, android)")
	prefCmd.AddCommand(prefSetCmd)
}
