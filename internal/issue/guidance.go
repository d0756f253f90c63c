// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"io/fs"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
	"widgetcfg/pkg/xmltree"
)

// Id identifies a recurring failure class with dedicated guidance.
type Id int

const (
	ManifestNotFoundId Id = iota + 1
	MalformedManifestId
	RootTagMismatchId
	InvalidFieldValueId
	UnknownHookTypeId
)

// Issue pairs a failure class with the markdown guidance shown to the user.
type Issue struct {
	id    Id
	mdMsg string
}

// Id returns the issue's identifier.
func (i *Issue) Id() Id { return i.id }

// Render returns the issue's guidance rendered for the terminal using the
// given glamour style path ("" for auto).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

// render is a variable so tests can stub out terminal rendering.
var render = glamour.Render

var guidance = map[Id]*Issue{
	ManifestNotFoundId: {
		id: ManifestNotFoundId,
		mdMsg: `
# No manifest found

widgetcfg looked for a widget manifest (config.xml) but the file does not
exist or is not readable.

## Things you can try
- Pass the manifest explicitly:
~~~
$ widgetcfg --file path/to/config.xml show
~~~
- Create a starter manifest in the current directory:
~~~
$ widgetcfg init
~~~`,
	},

	MalformedManifestId: {
		id: MalformedManifestId,
		mdMsg: `
# The manifest is not well-formed XML

The file exists but could not be parsed. Common causes are an unclosed
element, a stray ` + "`&`" + ` that should be ` + "`&amp;`" + `, or mismatched quotes in an
attribute.

## Things you can try
- Open the file and check the location named in the error
- Validate with any XML-aware editor before retrying`,
	},

	RootTagMismatchId: {
		id: RootTagMismatchId,
		mdMsg: `
# Not a widget manifest

The document parsed, but its root element is not ` + "`<widget>`" + `. widgetcfg
only edits widget application manifests.

## Things you can try
- Check you pointed at config.xml, not plugin.xml or another XML file
- If this really is your manifest, rename the root element to ` + "`<widget>`" + `,
  keeping its attributes`,
	},

	InvalidFieldValueId: {
		id: InvalidFieldValueId,
		mdMsg: `
# Invalid field value

The value did not match the pattern the field requires. Nothing was
changed in the manifest.

## Field formats
- **id**: reverse-domain identifier, e.g. ` + "`com.example.app`" + `
- **version**: MAJOR.MINOR.PATCH, e.g. ` + "`1.2.3`" + `
- **android-versioncode**: digits only, e.g. ` + "`42`" + `
- **ios-bundleversion**: up to three dot-separated numbers, e.g. ` + "`1.2.3`" + ``,
	},

	UnknownHookTypeId: {
		id: UnknownHookTypeId,
		mdMsg: `
# Unknown hook type

Hook types are a fixed set of lifecycle event names. Run
` + "`widgetcfg hook add --help`" + ` for the full list; the common ones are
` + "`before_build`" + `, ` + "`after_build`" + `, ` + "`before_prepare`" + ` and ` + "`after_prepare`" + `.`,
	},
}

// Ids returns the known failure classes in ascending order, for tests and
// documentation tooling.
func Ids() []Id {
	ids := maps.Keys(guidance)
	slices.Sort(ids)
	return ids
}

// Lookup returns the guidance for a failure class, or nil when the class
// has none.
func Lookup(id Id) *Issue {
	return guidance[id]
}

// Classify maps an error from the manifest core to a failure class. The
// second return is false for errors with no dedicated guidance.
func Classify(err error) (Id, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ManifestNotFoundId, true
	case errors.Is(err, widgetfile.ErrRootTag):
		return RootTagMismatchId, true
	case errors.Is(err, xmltree.ErrParse):
		return MalformedManifestId, true
	case errors.Is(err, types.ErrInvalidHookType):
		return UnknownHookTypeId, true
	case errors.Is(err, types.ErrInvalidAppID),
		errors.Is(err, types.ErrInvalidVersion),
		errors.Is(err, types.ErrInvalidAndroidVersionCode),
		errors.Is(err, types.ErrInvalidIOSBundleVersion):
		return InvalidFieldValueId, true
	}
	return 0, false
}
