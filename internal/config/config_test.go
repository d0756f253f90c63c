// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty (no config file)", path)
	}
	want := DefaultConfig()
	if cfg.UI.ColorScheme != want.UI.ColorScheme ||
		cfg.Backup.Suffix != want.Backup.Suffix ||
		cfg.Hooks.Enabled != want.Hooks.Enabled {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "config.cue")
	content := `
ui: {
	color_scheme: "dark"
	verbose:      true
}
backup: {
	enabled: true
	suffix:  ".orig"
}
`
	if err := os.WriteFile(cuePath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Load(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path != cuePath {
		t.Errorf("resolved path = %q, want %q", path, cuePath)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v, want dark/verbose", cfg.UI)
	}
	if !cfg.Backup.Enabled || cfg.Backup.Suffix != ".orig" {
		t.Errorf("Backup = %+v, want enabled/.orig", cfg.Backup)
	}
	// Unset sections keep their defaults.
	if !cfg.Hooks.Enabled {
		t.Error("Hooks.Enabled lost its default")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, _, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "absent.cue")})
	if err == nil {
		t.Fatal("Load() with missing explicit config = nil error, want error")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(cuePath, []byte(`ui: color_scheme: "neon"`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() with schema-violating config = nil error, want error")
	}
}

func TestLoad_MalformedCUE(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "config.cue")
	if err := os.WriteFile(cuePath, []byte(`ui: { color_scheme:`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() with malformed CUE = nil error, want error")
	}
}

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, valid := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := valid.Validate(); err != nil {
			t.Errorf("ColorScheme(%q).Validate() = %v, want nil", valid, err)
		}
	}
	err := ColorScheme("neon").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("ColorScheme(neon).Validate() = %v, want ErrInvalidColorScheme", err)
	}
}

func TestConfig_Validate_BackupSuffix(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Backup.Enabled = true
	cfg.Backup.Suffix = "sub/dir"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidBackupSuffix) {
		t.Errorf("Validate() = %v, want ErrInvalidBackupSuffix", err)
	}

	cfg.Backup.Suffix = " "
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidBackupSuffix) {
		t.Errorf("Validate() = %v, want ErrInvalidBackupSuffix", err)
	}

	// Suffix is irrelevant while backups are disabled.
	cfg.Backup.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with backups disabled = %v, want nil", err)
	}
}

func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	SetConfigDirOverride("/tmp/widgetcfg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != "/tmp/widgetcfg-test" {
		t.Errorf("ConfigDir() = %q, want override", dir)
	}
}
