// SPDX-License-Identifier: MPL-2.0

package xmltree

import (
	"errors"
	"testing"
)

const sampleWidget = `<?xml version="1.0" encoding="UTF-8"?>
<widget id="com.example.app" version="1.0.0">
    <name>Example</name>
    <description>
        A sample application.
    </description>
    <preference name="Orientation" value="portrait" />
    <platform name="ios">
        <preference name="StatusBarStyle" value="default" />
    </platform>
</widget>
`

func TestParse_Tree(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleWidget), "config.xml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	root := doc.Root()
	if root.Tag() != "widget" {
		t.Errorf("root tag = %q, want widget", root.Tag())
	}
	if got := root.AttrDefault("id"); got != "com.example.app" {
		t.Errorf("root id = %q, want com.example.app", got)
	}
	children := root.Children()
	if len(children) != 4 {
		t.Fatalf("root has %d children, want 4", len(children))
	}
	if children[0].Tag() != "name" || children[0].Text() != "Example" {
		t.Errorf("first child = <%s>%q, want <name>Example", children[0].Tag(), children[0].Text())
	}

	platform := root.FindFirst(`./platform[@name="ios"]`)
	if platform == nil {
		t.Fatal("platform[@name=ios] not found")
	}
	if len(platform.Children()) != 1 {
		t.Errorf("platform has %d children, want 1", len(platform.Children()))
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"unclosed_tag", `<widget><name>x</widget>`},
		{"empty", ``},
		{"whitespace_only", "  \n\t"},
		{"two_roots", `<widget /><widget />`},
		{"not_xml", `{"widget": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data), "bad.xml")
			if err == nil {
				t.Fatal("Parse() returned nil error, want ParseError")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error should wrap ErrParse, got: %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if pe.Source != "bad.xml" {
				t.Errorf("ParseError.Source = %q, want bad.xml", pe.Source)
			}
		})
	}
}

func TestParse_AttrOrderPreserved(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`<widget version="1.0.0" id="a.b.c" />`), "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	attrs := doc.Root().Attrs()
	if len(attrs) != 2 || attrs[0].Key != "version" || attrs[1].Key != "id" {
		t.Errorf("attribute order not preserved: %v", attrs)
	}
}
