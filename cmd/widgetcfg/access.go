// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"widgetcfg/pkg/widgetfile"
)

var (
	accessOptions []string

	accessCmd = &cobra.Command{
		Use:   "access",
		Short: "Manage the access-origin allowlist",
	}

	accessAddCmd = &cobra.Command{
		Use:   "add <origin>",
		Short: "Allow a network origin (upsert)",
		Long: `Add an <access> entry for the origin. An existing entry for the same
origin is replaced, so re-running the command with new options converges
instead of accumulating duplicates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseAccessOptions(accessOptions)
			if err != nil {
				return err
			}
			return mutateManifest("allow origin "+args[0], func(wf *widgetfile.Widgetfile) error {
				wf.SetAccessOrigin(args[0], options)
				return nil
			})
		},
	}

	accessRmCmd = &cobra.Command{
		Use:   "rm <origin>",
		Short: "Remove one allowed origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("remove origin "+args[0], func(wf *widgetfile.Widgetfile) error {
				wf.RemoveAccessOrigin(args[0])
				return nil
			})
		},
	}

	accessClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Remove every allowed origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("clear access origins", func(wf *widgetfile.Widgetfile) error {
				wf.RemoveAccessOrigins()
				return nil
			})
		},
	}
)

func init() {
	accessAddCmd.Flags().StringArrayVarP(&accessOptions, "option", "o", nil, "extra attribute as key=value (repeatable)")
	accessCmd.AddCommand(accessAddCmd)
	accessCmd.AddCommand(accessRmCmd)
	accessCmd.AddCommand(accessClearCmd)
}

// parseAccessOptions turns repeated key=value flags into the attribute map
// copied onto the <access> element.
func parseAccessOptions(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	options := make(map[string]string, len(raw))
	for _, kv := range raw {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --option %q: expected key=value", kv)
		}
		options[key] = value
	}
	return options, nil
}
