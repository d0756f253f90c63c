// SPDX-License-Identifier: MPL-2.0

// Package xmltree implements a mutable in-memory element tree for XML
// documents: parsing from a token stream, a small path-query language for
// locating elements, ordered attribute and child manipulation, and
// serialization back to indented markup.
//
// The tree preserves attribute order and child order exactly as parsed, so a
// parse/serialize round trip is stable modulo whitespace.
package xmltree

// Attr is a single element attribute. Order is significant: attributes are
// serialized in the order they were parsed or set.
type Attr struct {
	Key   string
	Value string
}

// Element is a node in the tree: a tag, ordered attributes, optional text
// content, and ordered children. The zero value is not usable; create
// elements with NewElement or by parsing.
type Element struct {
	tag      string
	attrs    []Attr
	text     string
	children []*Element
	parent   *Element
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the element's parent, or nil for a root or detached element.
func (e *Element) Parent() *Element { return e.parent }

// Text returns the element's text content.
func (e *Element) Text() string { return e.text }

// SetText replaces the element's text content.
func (e *Element) SetText(text string) { e.text = text }

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AttrDefault returns the value of the named attribute, or "" if absent.
func (e *Element) AttrDefault(key string) string {
	v, _ := e.Attr(key)
	return v
}

// SetAttr sets the named attribute, replacing an existing value in place or
// appending a new attribute at the end.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
}

// RemoveAttr removes the named attribute. Removing an absent attribute is a
// no-op.
func (e *Element) RemoveAttr(key string) {
	for i, a := range e.attrs {
		if a.Key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the element's attributes in order.
func (e *Element) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetAttrs replaces the element's entire attribute set with the given
// attributes, preserving their order.
func (e *Element) SetAttrs(attrs []Attr) {
	e.attrs = make([]Attr, len(attrs))
	copy(e.attrs, attrs)
}

// Children returns the element's direct children in document order. The
// returned slice is a copy; mutating it does not affect the tree.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Append adds child as the last child of e. A child already attached
// elsewhere is detached from its previous parent first.
func (e *Element) Append(child *Element) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches child from e. Removing an element that is not a child of e
// is a no-op.
func (e *Element) Remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}
