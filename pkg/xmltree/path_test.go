// SPDX-License-Identifier: MPL-2.0

package xmltree

import "testing"

func buildQueryTree(t *testing.T) *Element {
	t.Helper()
	doc, err := Parse([]byte(`<widget>
    <preference name="a" value="1" />
    <preference name="b" value="2" />
    <platform name="ios">
        <preference name="a" value="ios-1" />
    </platform>
    <platform name="android" />
    <access origin="https://a.com" />
</widget>`), "")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc.Root()
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want int
	}{
		{"self_dot", ".", 1},
		{"self_empty", "", 1},
		{"children_by_tag", "./preference", 2},
		{"inline_predicate", `./preference[@name="a"]`, 1},
		{"standalone_predicate", `./platform/[@name="ios"]`, 1},
		{"nested_step", `./platform[@name="ios"]/preference`, 1},
		{"url_predicate", `./access[@origin="https://a.com"]`, 1},
		{"url_standalone_predicate", `./access/[@origin="https://a.com"]`, 1},
		{"url_predicate_then_step", `./platform[@name="ios"]/preference[@name="a"]`, 1},
		{"slash_in_single_quotes", `./access[@origin='https://a.com']`, 1},
		{"no_match_tag", "./hook", 0},
		{"no_match_predicate", `./preference[@name="zzz"]`, 0},
		{"unknown_attr", `./access[@origin="https://b.com"]`, 0},
		{"malformed_predicate", `./preference[@name=a]`, 0},
		{"unterminated_predicate", `./preference[@name="a"`, 0},
	}

	root := buildQueryTree(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := root.FindAll(tt.path)
			if len(got) != tt.want {
				t.Errorf("FindAll(%q) returned %d matches, want %d", tt.path, len(got), tt.want)
			}
		})
	}
}

func TestSplitSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want []string
	}{
		{"plain_steps", "./a/b", []string{".", "a", "b"}},
		{"slash_inside_quoted_predicate", `./access[@origin="https://a.com"]`, []string{".", `access[@origin="https://a.com"]`}},
		{"slash_after_predicate", `./platform[@name="ios"]/preference`, []string{".", `platform[@name="ios"]`, "preference"}},
		{"single_quoted_value", `./a[@k='v/w']/b`, []string{".", `a[@k='v/w']`, "b"}},
		{"unterminated_quote_stays_whole", `./a[@k="v/w`, []string{".", `a[@k="v/w`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := splitSteps(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("splitSteps(%q) = %q, want %q", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitSteps(%q)[%d] = %q, want %q", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindFirst_DocumentOrder(t *testing.T) {
	t.Parallel()

	root := buildQueryTree(t)
	first := root.FindFirst("./preference")
	if first == nil {
		t.Fatal("FindFirst(./preference) = nil")
	}
	if got := first.AttrDefault("name"); got != "a" {
		t.Errorf("first preference name = %q, want a (document order)", got)
	}
}

func TestFindFirst_NoMatch(t *testing.T) {
	t.Parallel()

	root := buildQueryTree(t)
	if el := root.FindFirst("./missing/path"); el != nil {
		t.Errorf("FindFirst on missing path = %v, want nil", el)
	}
}
