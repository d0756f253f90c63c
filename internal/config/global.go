// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// os.UserHomeDir() does not reliably respect the HOME environment variable
// on all platforms, so tests set an explicit directory instead.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path. Intended for
// tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}
