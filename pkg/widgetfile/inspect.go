// SPDX-License-Identifier: MPL-2.0

package widgetfile

import (
	"widgetcfg/pkg/types"
	"widgetcfg/pkg/xmltree"
)

// Author is the manifest author: element text plus optional contact
// attributes.
type Author struct {
	Name    string
	Email   string
	Website string
}

// Preference is a name/value preference entry.
type Preference struct {
	Name  string
	Value string
}

// AccessOrigin is a network allowlist entry: the origin plus any extra
// attributes (e.g. subdomains) in document order.
type AccessOrigin struct {
	Origin  string
	Options []xmltree.Attr
}

// Hook is a declared lifecycle hook.
type Hook struct {
	Type types.HookType
	Src  string
}

// ID returns the root's "id" attribute, or "" when unset.
func (w *Widgetfile) ID() string { return w.root.AttrDefault("id") }

// Version returns the root's "version" attribute, or "" when unset.
func (w *Widgetfile) Version() string { return w.root.AttrDefault("version") }

// AndroidVersionCode returns the root's "android-versionCode" attribute.
func (w *Widgetfile) AndroidVersionCode() string {
	return w.root.AttrDefault("android-versionCode")
}

// IOSBundleVersion returns the root's "ios-CFBundleVersion" attribute.
func (w *Widgetfile) IOSBundleVersion() string {
	return w.root.AttrDefault("ios-CFBundleVersion")
}

// Name returns the text of the <name> child, or "" when absent.
func (w *Widgetfile) Name() string {
	return childText(w.root, "name")
}

// Description returns the text of the <description> child, or "" when absent.
func (w *Widgetfile) Description() string {
	return childText(w.root, "description")
}

// Author returns the <author> entry; the zero value when absent.
func (w *Widgetfile) Author() Author {
	el := w.root.FindFirst("./author")
	if el == nil {
		return Author{}
	}
	return Author{
		Name:    el.Text(),
		Email:   el.AttrDefault("email"),
		Website: el.AttrDefault("href"),
	}
}

// Preferences returns the root-scoped preference entries in document order.
func (w *Widgetfile) Preferences() []Preference {
	return preferencesIn(w.root)
}

// PlatformNames returns the name attribute of each <platform> scope in
// document order.
func (w *Widgetfile) PlatformNames() []string {
	var names []string
	for _, el := range w.root.FindAll("./platform") {
		names = append(names, el.AttrDefault("name"))
	}
	return names
}

// PlatformPreferences returns the preference entries scoped to the named
// platform; nil when the scope does not exist.
func (w *Widgetfile) PlatformPreferences(platform string) []Preference {
	scope := w.root.FindFirst(`./platform[@name="` + platform + `"]`)
	if scope == nil {
		return nil
	}
	return preferencesIn(scope)
}

// AccessOrigins returns the access allowlist in document order.
func (w *Widgetfile) AccessOrigins() []AccessOrigin {
	var origins []AccessOrigin
	for _, el := range w.root.FindAll("./access") {
		entry := AccessOrigin{Origin: el.AttrDefault("origin")}
		for _, a := range el.Attrs() {
			if a.Key != "origin" {
				entry.Options = append(entry.Options, a)
			}
		}
		origins = append(origins, entry)
	}
	return origins
}

// Hooks returns every declared hook in document order, duplicates included.
func (w *Widgetfile) Hooks() []Hook {
	var hooks []Hook
	for _, el := range w.root.FindAll("./hook") {
		hooks = append(hooks, Hook{
			Type: types.HookType(el.AttrDefault("type")),
			Src:  el.AttrDefault("src"),
		})
	}
	return hooks
}

// HooksByType returns the hooks declared for one lifecycle event, in
// document order.
func (w *Widgetfile) HooksByType(hookType types.HookType) []Hook {
	var hooks []Hook
	for _, h := range w.Hooks() {
		if h.Type == hookType {
			hooks = append(hooks, h)
		}
	}
	return hooks
}

func preferencesIn(scope *xmltree.Element) []Preference {
	var prefs []Preference
	for _, el := range scope.FindAll("./preference") {
		prefs = append(prefs, Preference{
			Name:  el.AttrDefault("name"),
			Value: el.AttrDefault("value"),
		})
	}
	return prefs
}

func childText(parent *xmltree.Element, tag string) string {
	el := parent.FindFirst("./" + tag)
	if el == nil {
		return ""
	}
	return el.Text()
}
