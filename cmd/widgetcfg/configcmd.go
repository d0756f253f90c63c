// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"widgetcfg/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the tool configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(TitleStyle.Render("Configuration"))
			printField("ui.color_scheme", string(cfg.UI.ColorScheme))
			printField("ui.verbose", fmt.Sprintf("%t", cfg.UI.Verbose))
			printField("backup.enabled", fmt.Sprintf("%t", cfg.Backup.Enabled))
			printField("backup.suffix", cfg.Backup.Suffix)
			printField("hooks.enabled", fmt.Sprintf("%t", cfg.Hooks.Enabled))
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the path the configuration is loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				fmt.Println(cfgFile)
				return nil
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
