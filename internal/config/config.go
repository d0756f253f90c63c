// SPDX-License-Identifier: MPL-2.0

// Package config loads the widgetcfg tool configuration: defaults, an
// optional CUE config file validated against an embedded schema, and
// WIDGETCFG_* environment variables, merged in that order through Viper.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"widgetcfg/internal/cueutil"
	"widgetcfg/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "widgetcfg"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// maxConfigFileSize bounds config reads; a config file measured in
	// megabytes is a mistake, not a configuration.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// LoadOptions controls where Load looks for the config file.
type LoadOptions struct {
	// ConfigFilePath, when set (--config flag), is used exclusively; a
	// missing file is an error.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory lookup.
	ConfigDirPath string
}

// ConfigDir returns the widgetcfg configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves and loads the configuration. It returns the config, the
// path of the config file that was used ("" when running on defaults), and
// an error for unreadable or invalid files. A missing default config file
// is not an error.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("backup.enabled", defaults.Backup.Enabled)
	v.SetDefault("backup.suffix", defaults.Backup.Suffix)
	v.SetDefault("hooks.enabled", defaults.Hooks.Enabled)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'widgetcfg config show' to see the effective configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				Build()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", wrapConfigLoad(err, opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			var err error
			cfgDir, err = ConfigDir()
			if err != nil {
				return nil, "", err
			}
		}
		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cuePath) {
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, "", wrapConfigLoad(err, cuePath)
			}
			resolvedPath = cuePath
		}
		// No config file found: defaults plus environment.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Run 'widgetcfg config show' to inspect the merged values").
			Wrap(err).
			Build()
	}

	return &cfg, resolvedPath, nil
}

func wrapConfigLoad(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		Wrap(err).
		Build()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper.
//
// The decode target is map[string]any rather than Config so Viper keeps
// track of which keys the file actually set, and validation runs with
// Concrete(false) because every schema field is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckSize(data, maxConfigFileSize, path); err != nil {
		return err
	}

	unified, err := cueutil.Unify(configSchema, "#Config", data, path)
	if err != nil {
		return err
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return cueutil.FormatError(err, path)
	}
	return v.MergeConfigMap(values)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
