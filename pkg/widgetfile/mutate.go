// SPDX-License-Identifier: MPL-2.0

package widgetfile

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/xmltree"
)

// SetID validates and writes the application identifier to the root's "id"
// attribute.
func (w *Widgetfile) SetID(id types.AppID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.root.SetAttr("id", id.String())
	return nil
}

// SetVersion validates and writes the application version to the root's
// "version" attribute.
func (w *Widgetfile) SetVersion(version types.Version) error {
	if err := version.Validate(); err != nil {
		return err
	}
	w.root.SetAttr("version", version.String())
	return nil
}

// SetAndroidVersionCode validates and writes the Android build counter to
// the root's "android-versionCode" attribute.
func (w *Widgetfile) SetAndroidVersionCode(code types.AndroidVersionCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	w.root.SetAttr("android-versionCode", code.String())
	return nil
}

// SetIOSBundleVersion validates and writes the iOS build version to the
// root's "ios-CFBundleVersion" attribute.
func (w *Widgetfile) SetIOSBundleVersion(version types.IOSBundleVersion) error {
	if err := version.Validate(); err != nil {
		return err
	}
	w.root.SetAttr("ios-CFBundleVersion", version.String())
	return nil
}

// SetName sets the manifest's display name: the text of the single <name>
// child of root.
func (w *Widgetfile) SetName(name string) {
	w.setNamedElement("name", name, nil)
}

// SetDescription sets the manifest's description: the text of the single
// <description> child of root.
func (w *Widgetfile) SetDescription(description string) {
	w.setNamedElement("description", description, nil)
}

// SetAuthor sets the single <author> child of root: name becomes the
// element text, email and website (when non-empty) its attributes.
func (w *Widgetfile) SetAuthor(name, email, website string) {
	var attrs []xmltree.Attr
	if email != "" {
		attrs = append(attrs, xmltree.Attr{Key: "email", Value: email})
	}
	if website != "" {
		attrs = append(attrs, xmltree.Attr{Key: "href", Value: website})
	}
	w.setNamedElement("author", name, attrs)
}

// setNamedElement is the upsert primitive behind SetName, SetDescription,
// and SetAuthor: find the first direct child of root with the given tag,
// creating and appending it if absent, then set its text and replace its
// entire attribute set.
func (w *Widgetfile) setNamedElement(tag, text string, attrs []xmltree.Attr) {
	el := w.root.FindFirst("./" + tag)
	if el == nil {
		el = xmltree.NewElement(tag)
		w.root.Append(el)
	}
	el.SetText(text)
	el.SetAttrs(attrs)
}

// SetPreference upserts a root-scoped <preference> child. At most one
// preference with a given name exists per scope: an existing entry is
// removed before the fresh one is appended, so re-application with the same
// arguments is idempotent.
func (w *Widgetfile) SetPreference(name, value string) {
	setPreferenceIn(w.root, name, value)
}

// SetPlatformPreference upserts a <preference> inside the <platform> scope
// with the given name attribute, creating the scope lazily on first use.
func (w *Widgetfile) SetPlatformPreference(platform, name, value string) {
	scope := w.root.FindFirst(`./platform[@name="` + platform + `"]`)
	if scope == nil {
		scope = xmltree.NewElement("platform")
		scope.SetAttr("name", platform)
		w.root.Append(scope)
	}
	setPreferenceIn(scope, name, value)
}

// setPreferenceIn removes any existing preference with the given name from
// scope, then appends a fresh one. The removal always targets the resolved
// scope element itself, never a previously looked-up parent.
func setPreferenceIn(scope *xmltree.Element, name, value string) {
	if existing := scope.FindFirst(`./preference[@name="` + name + `"]`); existing != nil {
		scope.Remove(existing)
	}
	pref := xmltree.NewElement("preference")
	pref.SetAttr("name", name)
	pref.SetAttr("value", value)
	scope.Append(pref)
}

// SetAccessOrigin upserts the <access> child of root for the given origin.
// options are copied as additional attributes in sorted key order so output
// is deterministic. An existing entry for the origin is removed first, so at
// most one <access> per origin exists in the document.
func (w *Widgetfile) SetAccessOrigin(origin string, options map[string]string) {
	w.RemoveAccessOrigin(origin)

	access := xmltree.NewElement("access")
	access.SetAttr("origin", origin)
	keys := maps.Keys(options)
	slices.Sort(keys)
	for _, k := range keys {
		access.SetAttr(k, options[k])
	}
	w.root.Append(access)
}

// RemoveAccessOrigin removes the <access> child of root with the given
// origin attribute; removing an absent origin is a no-op.
func (w *Widgetfile) RemoveAccessOrigin(origin string) {
	for _, el := range w.root.FindAll(`./access[@origin="` + origin + `"]`) {
		w.root.Remove(el)
	}
}

// RemoveAccessOrigins removes every <access> child of root.
func (w *Widgetfile) RemoveAccessOrigins() {
	for _, el := range w.root.FindAll("./access") {
		w.root.Remove(el)
	}
}

// AddHook validates hookType against the recognized lifecycle event table
// and appends a <hook> child of root with type and src attributes. Hooks
// are append-only: duplicate declarations are intentional (a script may
// legitimately run twice) and never deduplicated.
func (w *Widgetfile) AddHook(hookType types.HookType, src string) error {
	if err := hookType.Validate(); err != nil {
		return err
	}
	hook := xmltree.NewElement("hook")
	hook.SetAttr("type", hookType.String())
	hook.SetAttr("src", src)
	w.root.Append(hook)
	return nil
}

type injectOptions struct {
	at       string
	ifAbsent string
}

// InjectOption configures AddRawXML.
type InjectOption func(*injectOptions)

// InjectAt addresses the parent element the fragment is appended to.
// Absolute paths ("/widget/...") are accepted and resolved against root.
func InjectAt(path string) InjectOption {
	return func(o *injectOptions) { o.at = path }
}

// InjectIfAbsent makes the injection conditional: when path matches any
// element in the document, the call is a no-op.
func InjectIfAbsent(path string) InjectOption {
	return func(o *injectOptions) { o.ifAbsent = path }
}

// AddRawXML parses raw as a standalone fragment and appends it under the
// element addressed by InjectAt (root when not given). When the InjectAt
// path matches no element, or the InjectIfAbsent guard already matches one,
// the call silently does nothing. The only error condition is a malformed
// fragment.
func (w *Widgetfile) AddRawXML(raw string, opts ...InjectOption) error {
	var o injectOptions
	for _, opt := range opts {
		opt(&o)
	}

	parent := w.root
	if o.at != "" {
		parent = w.root.FindFirst(resolveElementPath(o.at))
	}
	skip := o.ifAbsent != "" && len(w.root.FindAll(resolveElementPath(o.ifAbsent))) > 0
	if parent == nil || skip {
		return nil
	}

	frag, err := xmltree.Parse([]byte(raw), "<fragment>")
	if err != nil {
		return err
	}
	parent.Append(frag.Root())
	return nil
}
