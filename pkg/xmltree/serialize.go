// SPDX-License-Identifier: MPL-2.0

package xmltree

import (
	"strings"
)

// DefaultIndent is the indentation unit used by Serialize.
const DefaultIndent = "    "

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Serialize renders the document as indented XML with the default
// four-space indentation and a leading XML declaration.
func Serialize(doc *Document) []byte {
	return SerializeIndent(doc, DefaultIndent)
}

// SerializeIndent renders the document using the given indentation unit.
// Attribute order and child order are emitted exactly as stored; elements
// with neither text nor children are self-closed.
func SerializeIndent(doc *Document, indent string) []byte {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteByte('\n')
	writeElement(&b, doc.root, indent, 0)
	b.WriteByte('\n')
	return []byte(b.String())
}

func writeElement(b *strings.Builder, e *Element, indent string, depth int) {
	pad := strings.Repeat(indent, depth)

	b.WriteString(pad)
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}

	text := strings.TrimSpace(e.text)
	if text == "" && len(e.children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')

	if len(e.children) == 0 {
		// Text-only element stays on one line.
		b.WriteString(escapeText(text))
		b.WriteString("</")
		b.WriteString(e.tag)
		b.WriteByte('>')
		return
	}

	if text != "" {
		b.WriteByte('\n')
		b.WriteString(pad)
		b.WriteString(indent)
		b.WriteString(escapeText(text))
	}
	for _, child := range e.children {
		b.WriteByte('\n')
		writeElement(b, child, indent, depth+1)
	}
	b.WriteByte('\n')
	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

func escapeText(s string) string { return textEscaper.Replace(s) }
