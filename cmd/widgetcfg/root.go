// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"widgetcfg/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string
	// manifestPath is the manifest being edited (--file flag).
	manifestPath string

	// cfg is the loaded tool configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "widgetcfg",
		Short: "Edit widget application manifests",
		Long: TitleStyle.Render("widgetcfg") + SubtitleStyle.Render(" - Edit widget application manifests") + `

widgetcfg loads a config.xml widget manifest, applies typed and validated
mutations (identity fields, preferences, access origins, lifecycle hooks,
raw XML fragments), and writes the result back with stable formatting.

` + SubtitleStyle.Render("Examples:") + `
  widgetcfg show                          Summarize the manifest
  widgetcfg set version 1.2.3             Set the application version
  widgetcfg pref set Orientation portrait Set a root-scoped preference
  widgetcfg access add https://a.com      Allow a network origin
  widgetcfg hook add before_build x.sh    Declare a lifecycle hook
  widgetcfg apply release.toml            Apply a batch edit plan`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().StringVarP(&manifestPath, "file", "f", "config.xml", "path to the widget manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/widgetcfg/config.cue)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(prefCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the tool configuration and applies it to flags that
// were not set explicitly.
func initRootConfig() {
	loaded, _, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Config problems must never block an edit; warn and run on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
