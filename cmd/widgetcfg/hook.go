// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"widgetcfg/internal/hookrun"
	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
)

var (
	hookCmd = &cobra.Command{
		Use:   "hook",
		Short: "Manage and run lifecycle hooks",
	}

	hookAddCmd = &cobra.Command{
		Use:   "add <type> <src>",
		Short: "Declare a lifecycle hook (append-only)",
		Long: `Declare a hook script for a lifecycle event. Hooks are append-only:
declaring the same script twice runs it twice. Valid types:

  ` + hookTypeList(),
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeHookTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("add hook "+args[0], func(wf *widgetfile.Widgetfile) error {
				return wf.AddHook(types.HookType(args[0]), args[1])
			})
		},
	}

	hookListCmd = &cobra.Command{
		Use:   "list",
		Short: "List declared hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := loadManifest()
			if err != nil {
				return err
			}
			hooks := wf.Hooks()
			if len(hooks) == 0 {
				fmt.Println(SubtitleStyle.Render("No hooks declared."))
				return nil
			}
			for _, h := range hooks {
				fmt.Printf("%s -> %s\n", FieldStyle.Render(h.Type.String()), h.Src)
			}
			return nil
		},
	}

	hookRunCmd = &cobra.Command{
		Use:   "run <type>",
		Short: "Run the hooks declared for a lifecycle event",
		Long: `Execute every hook declared for the event, in document order, inside
the embedded shell interpreter. Execution stops at the first failing script
and its exit status becomes widgetcfg's exit status.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Hooks.Enabled {
				return errors.New("hook execution is disabled in the configuration (hooks.enabled)")
			}
			wf, err := loadManifest()
			if err != nil {
				return err
			}

			runner := hookrun.New(
				hookrun.WithStdIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
				hookrun.WithLogger(log.Default()),
			)
			if err := runner.Run(cmd.Context(), wf, types.HookType(args[0])); err != nil {
				var hfe *hookrun.HookFailedError
				if errors.As(err, &hfe) && hfe.ExitCode != 0 {
					return &ExitError{Code: hfe.ExitCode, Cause: err}
				}
				return decorate(err, "run hooks "+args[0], wf.Path())
			}
			return nil
		},
	}
)

func init() {
	hookCmd.AddCommand(hookAddCmd)
	hookCmd.AddCommand(hookListCmd)
	hookCmd.AddCommand(hookRunCmd)
}

func hookTypeList() string {
	out := ""
	for i, h := range types.HookTypes {
		if i > 0 {
			if i%4 == 0 {
				out += "\n  "
			} else {
				out += ", "
			}
		}
		out += h.String()
	}
	return out
}

func completeHookTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, h := range types.HookTypes {
		names = append(names, h.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
