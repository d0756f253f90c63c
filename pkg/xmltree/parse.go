// SPDX-License-Identifier: MPL-2.0

package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("malformed XML")

// ParseError is returned when the input cannot be decoded into a tree.
// It wraps ErrParse for errors.Is() compatibility; the decoder's error is
// available via Unwrap chains on Cause.
type ParseError struct {
	// Source identifies the input for error messages (file path or "<input>").
	Source string
	// Cause is the underlying decoder error.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed XML in %s: %v", e.Source, e.Cause)
}

// Unwrap returns ErrParse so callers can use errors.Is for programmatic
// detection.
func (e *ParseError) Unwrap() error { return ErrParse }

// Document is a parsed tree plus its root element.
type Document struct {
	root *Element
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// NewDocument creates a document around an existing root element.
func NewDocument(root *Element) *Document {
	return &Document{root: root}
}

// Parse decodes XML data into an element tree. Attribute order and child
// order are preserved. source is used only in error messages.
//
// Text handling is deliberately simple: character data is accumulated onto
// the innermost open element and trimmed of surrounding indentation
// whitespace only at serialization boundaries (the raw text is kept as-is,
// except that whitespace-only runs between elements are dropped).
func Parse(data []byte, source string) (*Document, error) {
	if source == "" {
		source = "<input>"
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var (
		root    *Element
		current *Element
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Source: source, Cause: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				el.SetAttr(attrName(a.Name), a.Value)
			}
			if root == nil {
				root = el
			} else if current != nil {
				current.Append(el)
			} else {
				// A second top-level element; XML allows only one.
				return nil, &ParseError{Source: source, Cause: errors.New("multiple root elements")}
			}
			current = el

		case xml.CharData:
			if current == nil {
				continue
			}
			text := string(t)
			if isIndentation(text) {
				continue
			}
			current.text += text

		case xml.EndElement:
			if current != nil {
				current = current.parent
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Source: source, Cause: errors.New("document has no elements")}
	}
	return &Document{root: root}, nil
}

// attrName reconstructs a possibly-prefixed attribute name. The decoder
// resolves xmlns prefixes into namespace URLs; manifests use a fixed small
// set of prefixes, so the URL form is kept only when no prefix survives.
func attrName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Space + ":" + n.Local
}

// isIndentation reports whether text is a whitespace-only run, i.e. the
// formatting between elements rather than real text content.
func isIndentation(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
