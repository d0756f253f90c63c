// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidBackupSuffix is returned when a backup suffix is unusable.
	ErrInvalidBackupSuffix = errors.New("invalid backup suffix")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidBackupSuffixError is returned when a backup suffix is empty,
	// whitespace-only, or contains a path separator. It wraps
	// ErrInvalidBackupSuffix for errors.Is() compatibility.
	InvalidBackupSuffixError struct {
		Value string
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// BackupConfig controls whether a copy of the manifest is kept before
	// each overwrite.
	BackupConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Suffix  string `mapstructure:"suffix"`
	}

	// HooksConfig controls the hook runner.
	HooksConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// Config is the tool configuration loaded from config.cue, environment
	// variables, and defaults.
	Config struct {
		UI     UIConfig     `mapstructure:"ui"`
		Backup BackupConfig `mapstructure:"backup"`
		Hooks  HooksConfig  `mapstructure:"hooks"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI:     UIConfig{ColorScheme: ColorSchemeAuto, Verbose: false},
		Backup: BackupConfig{Enabled: false, Suffix: ".bak"},
		Hooks:  HooksConfig{Enabled: true},
	}
}

// Validate returns nil if the ColorScheme is a recognized value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return &InvalidColorSchemeError{Value: s}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: must be auto, dark, or light", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidBackupSuffixError) Error() string {
	return fmt.Sprintf("invalid backup suffix %q: must be non-empty and contain no path separator", e.Value)
}

// Unwrap returns ErrInvalidBackupSuffix for errors.Is() compatibility.
func (e *InvalidBackupSuffixError) Unwrap() error { return ErrInvalidBackupSuffix }

// Validate checks the constraints CUE cannot express (or that must hold
// even when the config came from defaults or the environment).
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.Backup.Enabled {
		s := c.Backup.Suffix
		if strings.TrimSpace(s) == "" || strings.ContainsAny(s, `/\`) {
			return &InvalidBackupSuffixError{Value: s}
		}
	}
	return nil
}
