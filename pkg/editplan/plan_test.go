// SPDX-License-Identifier: MPL-2.0

package editplan

import (
	"errors"
	"testing"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
	"widgetcfg/pkg/xmltree"
)

const samplePlan = `
id      = "com.example.app"
version = "2.0.0"
name    = "Example"

[author]
name  = "Jane Doe"
email = "jane@example.com"

[[preference]]
name  = "Orientation"
value = "portrait"

[[preference]]
name     = "StatusBarStyle"
value    = "default"
platform = "ios"

[[access]]
origin = "https://api.example.com"
[access.options]
subdomains = "true"

[[hook]]
type = "before_build"
src  = "hooks/lint.js"

[[inject]]
xml = "<feature name=\"Camera\" />"
if_absent = "./feature[@name=\"Camera\"]"
`

func newManifest(t *testing.T) *widgetfile.Widgetfile {
	t.Helper()
	wf, err := widgetfile.ParseBytes([]byte(`<widget id="old.id" version="1.0.0" />`), "config.xml")
	if err != nil {
		t.Fatal(err)
	}
	return wf
}

func TestDecode(t *testing.T) {
	t.Parallel()

	p, err := Decode([]byte(samplePlan))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p.ID != "com.example.app" || p.Version != "2.0.0" {
		t.Errorf("identity = %q/%q", p.ID, p.Version)
	}
	if len(p.Preferences) != 2 || p.Preferences[1].Platform != "ios" {
		t.Errorf("Preferences = %+v", p.Preferences)
	}
	if len(p.Access) != 1 || p.Access[0].Options["subdomains"] != "true" {
		t.Errorf("Access = %+v", p.Access)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte(`id = `)); err == nil {
		t.Error("Decode() of malformed TOML = nil error")
	}
}

func TestPlan_Apply(t *testing.T) {
	t.Parallel()

	p, err := Decode([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	wf := newManifest(t)
	if err := p.Apply(wf); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if wf.ID() != "com.example.app" || wf.Version() != "2.0.0" {
		t.Errorf("identity = %q/%q", wf.ID(), wf.Version())
	}
	if wf.Name() != "Example" {
		t.Errorf("Name() = %q", wf.Name())
	}
	if a := wf.Author(); a.Name != "Jane Doe" || a.Email != "jane@example.com" {
		t.Errorf("Author() = %+v", a)
	}
	if got := wf.Preferences(); len(got) != 1 || got[0].Name != "Orientation" {
		t.Errorf("Preferences() = %v", got)
	}
	if got := wf.PlatformPreferences("ios"); len(got) != 1 || got[0].Name != "StatusBarStyle" {
		t.Errorf("PlatformPreferences(ios) = %v", got)
	}
	if got := wf.AccessOrigins(); len(got) != 1 || got[0].Origin != "https://api.example.com" {
		t.Errorf("AccessOrigins() = %v", got)
	}
	if got := wf.Hooks(); len(got) != 1 || got[0].Src != "hooks/lint.js" {
		t.Errorf("Hooks() = %v", got)
	}
	if wf.Root().FindFirst(`./feature[@name="Camera"]`) == nil {
		t.Error("injected feature missing")
	}
}

func TestPlan_Apply_Idempotent(t *testing.T) {
	t.Parallel()

	p, err := Decode([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	wf := newManifest(t)
	if err := p.Apply(wf); err != nil {
		t.Fatal(err)
	}
	if err := p.Apply(wf); err != nil {
		t.Fatal(err)
	}

	// Upserts converge; the guarded inject stays single; hooks append.
	if got := len(wf.Preferences()); got != 1 {
		t.Errorf("root preferences = %d, want 1", got)
	}
	if got := len(wf.AccessOrigins()); got != 1 {
		t.Errorf("access origins = %d, want 1", got)
	}
	if got := len(wf.Root().FindAll("./feature")); got != 1 {
		t.Errorf("features = %d, want 1", got)
	}
	if got := len(wf.Hooks()); got != 2 {
		t.Errorf("hooks = %d, want 2 (append-only)", got)
	}
}

func TestPlan_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		plan     Plan
		sentinel error
	}{
		{"bad_version", Plan{Version: "not-semver"}, types.ErrInvalidVersion},
		{"bad_id", Plan{ID: "has spaces"}, types.ErrInvalidAppID},
		{"bad_hook_type", Plan{Hooks: []HookEntry{{Type: "nope", Src: "x"}}}, types.ErrInvalidHookType},
		{"malformed_inject", Plan{Injects: []InjectEntry{{XML: "<broken"}}}, xmltree.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.plan.Validate()
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Validate() = %v, want %v", err, tt.sentinel)
			}
		})
	}

	t.Run("invalid_plan_leaves_manifest_untouched", func(t *testing.T) {
		t.Parallel()
		wf := newManifest(t)
		before := string(wf.Bytes())
		p := Plan{Name: "New Name", Version: "bad"}
		if err := p.Apply(wf); err == nil {
			t.Fatal("Apply() of invalid plan = nil error")
		}
		if got := string(wf.Bytes()); got != before {
			t.Error("manifest mutated by invalid plan")
		}
	})

	// Valid fields must not land when a later inject entry is broken.
	t.Run("malformed_inject_leaves_manifest_untouched", func(t *testing.T) {
		t.Parallel()
		wf := newManifest(t)
		before := string(wf.Bytes())
		p := Plan{Version: "9.9.9", Injects: []InjectEntry{{XML: "<broken"}}}
		if err := p.Apply(wf); !errors.Is(err, xmltree.ErrParse) {
			t.Fatalf("Apply() = %v, want wrapped parse failure", err)
		}
		if got := string(wf.Bytes()); got != before {
			t.Errorf("manifest mutated by a failed plan: version = %q, want 1.0.0", wf.Version())
		}
	})
}
