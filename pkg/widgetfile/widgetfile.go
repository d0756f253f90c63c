// SPDX-License-Identifier: MPL-2.0

package widgetfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"widgetcfg/pkg/xmltree"
)

// RootTag is the required tag of a widget manifest's root element.
const RootTag = "widget"

// ErrRootTag is the sentinel error wrapped by RootTagError.
var ErrRootTag = errors.New("unexpected root element")

// RootTagError is returned when a parsed document's root element is not
// <widget>. It wraps ErrRootTag for errors.Is() compatibility.
type RootTagError struct {
	// Path identifies the offending file.
	Path string
	// Actual is the root tag that was found.
	Actual string
}

// Error implements the error interface.
func (e *RootTagError) Error() string {
	return fmt.Sprintf("%s: root element is <%s>, want <%s>", e.Path, e.Actual, RootTag)
}

// Unwrap returns ErrRootTag for errors.Is() compatibility.
func (e *RootTagError) Unwrap() error { return ErrRootTag }

// Widgetfile is a loaded widget manifest: the parsed tree, its root element,
// and the originating file path. Create one with Parse or ParseBytes.
type Widgetfile struct {
	doc  *xmltree.Document
	root *xmltree.Element
	path string
}

// Parse reads and parses a widget manifest from the given path.
func Parse(path string) (*Widgetfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses widget manifest content from bytes. path is recorded as
// the originating file and used in error messages.
//
// Editors and platform tooling occasionally prepend a byte-order mark or
// other junk before the markup; everything before the first '<' is dropped
// before parsing.
func ParseBytes(data []byte, path string) (*Widgetfile, error) {
	if i := bytes.IndexByte(data, '<'); i > 0 {
		data = data[i:]
	}

	doc, err := xmltree.Parse(data, path)
	if err != nil {
		return nil, err
	}

	root := doc.Root()
	if root.Tag() != RootTag {
		return nil, &RootTagError{Path: path, Actual: root.Tag()}
	}

	return &Widgetfile{doc: doc, root: root, path: path}, nil
}

// Path returns the originating file path.
func (w *Widgetfile) Path() string { return w.path }

// Root returns the manifest's root element. Callers that mutate through it
// bypass the validation in the typed setters.
func (w *Widgetfile) Root() *xmltree.Element { return w.root }

// resolveElementPath translates an absolute element path ("/widget/...")
// into one relative to the root element, since tree queries are always
// evaluated relative to a context node. Relative and empty paths pass
// through unchanged; malformed paths are left for lookup to reject.
func resolveElementPath(path string) string {
	if strings.HasPrefix(path, "/"+RootTag) {
		return "." + strings.TrimPrefix(path, "/"+RootTag)
	}
	return path
}
