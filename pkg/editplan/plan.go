// SPDX-License-Identifier: MPL-2.0

// Package editplan applies batches of manifest edits described in a TOML
// plan file. A plan is validated as a whole before anything is applied, so
// a plan either applies completely or leaves the manifest untouched.
package editplan

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
	"widgetcfg/pkg/xmltree"
)

type (
	// AuthorEntry is the plan's author section.
	AuthorEntry struct {
		Name    string `toml:"name"`
		Email   string `toml:"email,omitempty"`
		Website string `toml:"website,omitempty"`
	}

	// PreferenceEntry upserts one preference, optionally platform-scoped.
	PreferenceEntry struct {
		Name     string `toml:"name"`
		Value    string `toml:"value"`
		Platform string `toml:"platform,omitempty"`
	}

	// AccessEntry upserts one access-origin allowlist entry.
	AccessEntry struct {
		Origin  string            `toml:"origin"`
		Options map[string]string `toml:"options,omitempty"`
	}

	// HookEntry declares one lifecycle hook.
	HookEntry struct {
		Type types.HookType `toml:"type"`
		Src  string         `toml:"src"`
	}

	// InjectEntry appends a raw XML fragment.
	InjectEntry struct {
		XML      string `toml:"xml"`
		At       string `toml:"at,omitempty"`
		IfAbsent string `toml:"if_absent,omitempty"`
	}

	// Plan is a batch of manifest edits. Zero-valued fields are skipped, so
	// a plan only describes the fields it wants to change.
	Plan struct {
		ID                 types.AppID              `toml:"id,omitempty"`
		Version            types.Version            `toml:"version,omitempty"`
		AndroidVersionCode types.AndroidVersionCode `toml:"android_version_code,omitempty"`
		IOSBundleVersion   types.IOSBundleVersion   `toml:"ios_bundle_version,omitempty"`
		Name               string                   `toml:"name,omitempty"`
		Description        string                   `toml:"description,omitempty"`
		Author             *AuthorEntry             `toml:"author,omitempty"`
		ClearAccess        bool                     `toml:"clear_access,omitempty"`
		Preferences        []PreferenceEntry        `toml:"preference,omitempty"`
		Access             []AccessEntry            `toml:"access,omitempty"`
		Hooks              []HookEntry              `toml:"hook,omitempty"`
		Injects            []InjectEntry            `toml:"inject,omitempty"`
	}
)

// Load reads and decodes a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan at %s: %w", path, err)
	}
	return Decode(data)
}

// Decode decodes plan content from bytes.
func Decode(data []byte) (*Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	return &p, nil
}

// Validate checks every validated field in the plan and returns all
// failures joined; nil when the plan is applicable.
func (p *Plan) Validate() error {
	var errs []error

	if p.ID != "" {
		if err := p.ID.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Version != "" {
		if err := p.Version.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.AndroidVersionCode != "" {
		if err := p.AndroidVersionCode.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.IOSBundleVersion != "" {
		if err := p.IOSBundleVersion.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for i, h := range p.Hooks {
		if err := h.Type.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("hook %d: %w", i+1, err))
		}
		if h.Src == "" {
			errs = append(errs, fmt.Errorf("hook %d: src must not be empty", i+1))
		}
	}
	for i, pref := range p.Preferences {
		if pref.Name == "" {
			errs = append(errs, fmt.Errorf("preference %d: name must not be empty", i+1))
		}
	}
	for i, a := range p.Access {
		if a.Origin == "" {
			errs = append(errs, fmt.Errorf("access %d: origin must not be empty", i+1))
		}
	}
	for i, inj := range p.Injects {
		if inj.XML == "" {
			errs = append(errs, fmt.Errorf("inject %d: xml must not be empty", i+1))
			continue
		}
		// Parse up front so a malformed fragment fails the whole plan
		// instead of surfacing halfway through Apply.
		if _, err := xmltree.Parse([]byte(inj.XML), "<fragment>"); err != nil {
			errs = append(errs, fmt.Errorf("inject %d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

// Apply validates the plan and executes its edits against wf in a fixed
// order: access clearing, root attributes, named elements, preferences,
// access entries, hooks, injected fragments. Apply mutates the in-memory
// manifest only; saving is the caller's decision.
func (p *Plan) Apply(wf *widgetfile.Widgetfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.ClearAccess {
		wf.RemoveAccessOrigins()
	}
	if p.ID != "" {
		if err := wf.SetID(p.ID); err != nil {
			return err
		}
	}
	if p.Version != "" {
		if err := wf.SetVersion(p.Version); err != nil {
			return err
		}
	}
	if p.AndroidVersionCode != "" {
		if err := wf.SetAndroidVersionCode(p.AndroidVersionCode); err != nil {
			return err
		}
	}
	if p.IOSBundleVersion != "" {
		if err := wf.SetIOSBundleVersion(p.IOSBundleVersion); err != nil {
			return err
		}
	}
	if p.Name != "" {
		wf.SetName(p.Name)
	}
	if p.Description != "" {
		wf.SetDescription(p.Description)
	}
	if p.Author != nil {
		wf.SetAuthor(p.Author.Name, p.Author.Email, p.Author.Website)
	}
	for _, pref := range p.Preferences {
		if pref.Platform != "" {
			wf.SetPlatformPreference(pref.Platform, pref.Name, pref.Value)
		} else {
			wf.SetPreference(pref.Name, pref.Value)
		}
	}
	for _, a := range p.Access {
		wf.SetAccessOrigin(a.Origin, a.Options)
	}
	for _, h := range p.Hooks {
		if err := wf.AddHook(h.Type, h.Src); err != nil {
			return err
		}
	}
	for _, inj := range p.Injects {
		var opts []widgetfile.InjectOption
		if inj.At != "" {
			opts = append(opts, widgetfile.InjectAt(inj.At))
		}
		if inj.IfAbsent != "" {
			opts = append(opts, widgetfile.InjectIfAbsent(inj.IfAbsent))
		}
		if err := wf.AddRawXML(inj.XML, opts...); err != nil {
			return err
		}
	}
	return nil
}
