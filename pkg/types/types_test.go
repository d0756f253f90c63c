// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestAppID_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   AppID
		want bool
	}{
		{"reverse_domain", AppID("com.example.app"), true},
		{"single_char", AppID("a"), true},
		{"with_hyphen", AppID("com.my-org.app"), true},
		{"with_underscore", AppID("com.example.my_app"), true},
		{"with_port", AppID("example.com:8080"), true},
		{"with_path", AppID("example.com/apps/demo"), true},
		{"empty", AppID(""), false},
		{"leading_dot", AppID(".com.example"), false},
		{"trailing_dot", AppID("com.example."), false},
		{"spaces", AppID("com example"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.id.Validate()
			if (err == nil) != tt.want {
				t.Errorf("AppID(%q).Validate() error = %v, want valid=%v", tt.id, err, tt.want)
			}
			if err != nil && !errors.Is(err, ErrInvalidAppID) {
				t.Errorf("error should wrap ErrInvalidAppID, got: %v", err)
			}
		})
	}
}

func TestVersion_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version Version
		want    bool
	}{
		{"simple", Version("1.0.0"), true},
		{"zeros", Version("0.0.0"), true},
		{"multi_digit", Version("12.34.567"), true},
		{"two_components", Version("1.0"), false},
		{"four_components", Version("1.0.0.0"), false},
		{"prerelease", Version("1.0.0-beta"), false},
		{"build_metadata", Version("1.0.0+42"), false},
		{"v_prefix", Version("v1.0.0"), false},
		{"empty", Version(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.version.Validate()
			if (err == nil) != tt.want {
				t.Errorf("Version(%q).Validate() error = %v, want valid=%v", tt.version, err, tt.want)
			}
			if err != nil && !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("error should wrap ErrInvalidVersion, got: %v", err)
			}
		})
	}
}

func TestAndroidVersionCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code AndroidVersionCode
		want bool
	}{
		{"single_digit", AndroidVersionCode("7"), true},
		{"long", AndroidVersionCode("20260828"), true},
		{"empty", AndroidVersionCode(""), false},
		{"dotted", AndroidVersionCode("1.0"), false},
		{"negative", AndroidVersionCode("-1"), false},
		{"alpha", AndroidVersionCode("7a"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.code.Validate()
			if (err == nil) != tt.want {
				t.Errorf("AndroidVersionCode(%q).Validate() error = %v, want valid=%v", tt.code, err, tt.want)
			}
		})
	}
}

func TestIOSBundleVersion_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version IOSBundleVersion
		want    bool
	}{
		{"one_component", IOSBundleVersion("1"), true},
		{"two_components", IOSBundleVersion("1.2"), true},
		{"three_components", IOSBundleVersion("1.2.3"), true},
		{"zero", IOSBundleVersion("0"), true},
		{"zero_leading_later", IOSBundleVersion("1.02.003"), true},
		{"leading_zero_first", IOSBundleVersion("01.2"), false},
		{"four_components", IOSBundleVersion("1.2.3.4"), false},
		{"empty", IOSBundleVersion(""), false},
		{"alpha", IOSBundleVersion("1.2b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.version.Validate()
			if (err == nil) != tt.want {
				t.Errorf("IOSBundleVersion(%q).Validate() error = %v, want valid=%v", tt.version, err, tt.want)
			}
		})
	}
}

func TestHookType_Validate(t *testing.T) {
	t.Parallel()

	// Every member of the table must validate.
	for _, h := range HookTypes {
		if err := h.Validate(); err != nil {
			t.Errorf("HookType(%q).Validate() = %v, want nil", h, err)
		}
	}

	if got := len(HookTypes); got != 34 {
		t.Errorf("len(HookTypes) = %d, want 34", got)
	}

	invalid := []HookType{"", "not_a_real_hook", "BEFORE_BUILD", "after_plugin_uninstall", "before build"}
	for _, h := range invalid {
		err := h.Validate()
		if err == nil {
			t.Errorf("HookType(%q).Validate() = nil, want error", h)
			continue
		}
		if !errors.Is(err, ErrInvalidHookType) {
			t.Errorf("error should wrap ErrInvalidHookType, got: %v", err)
		}
	}
}
