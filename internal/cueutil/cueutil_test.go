// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Settings: {
	backup?: {
		enabled?: bool
		suffix?:  string & =~"^\\..+$"
	}
	hooks?: {
		enabled?: bool
	}
}
`

func TestUnify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid file",
			data: `backup: enabled: true
backup: suffix: ".orig"`,
		},
		{
			name: "empty file is valid",
			data: "",
		},
		{
			name:    "wrong type",
			data:    `hooks: enabled: "yes"`,
			wantErr: "hooks.enabled",
		},
		{
			name:    "constraint violation",
			data:    `backup: suffix: "bak"`,
			wantErr: "backup.suffix",
		},
		{
			name:    "syntax error",
			data:    `backup: {`,
			wantErr: "settings.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unify(testSchema, "#Settings", []byte(tt.data), "settings.cue")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Unify() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Unify() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Unify() error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckSize(t *testing.T) {
	t.Parallel()

	if err := CheckSize(make([]byte, 10), 10, "f.cue"); err != nil {
		t.Errorf("CheckSize() at the limit should pass, got %v", err)
	}
	if err := CheckSize(make([]byte, 11), 10, "f.cue"); err == nil {
		t.Error("CheckSize() over the limit should fail")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"backup"}, "backup"},
		{[]string{"backup", "suffix"}, "backup.suffix"},
		{[]string{"hooks", "0", "src"}, "hooks[0].src"},
		{[]string{"0"}, "0"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
