// SPDX-License-Identifier: MPL-2.0

package xmltree

import "strings"

// The query language is the small subset of XPath that manifest tooling
// actually uses: relative child steps joined by "/", with optional
// attribute-equality predicates.
//
//	.                            the context element itself
//	./preference                 direct children tagged "preference"
//	./platform[@name="ios"]      children with a matching attribute
//	./platform/[@name="ios"]     same; the predicate as its own step
//
// Malformed or unsupported steps match nothing rather than erroring:
// callers treat "no match" and "bad path" identically.

type step struct {
	tag       string // "" for a bare-predicate step, "." for self
	attrKey   string
	attrValue string
	hasPred   bool
}

// FindFirst returns the first element matching path relative to e, in
// document order, or nil when nothing matches.
func (e *Element) FindFirst(path string) *Element {
	matches := e.FindAll(path)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindAll returns all elements matching path relative to e, in document
// order.
func (e *Element) FindAll(path string) []*Element {
	steps, ok := parsePath(path)
	if !ok {
		return nil
	}

	current := []*Element{e}
	for _, st := range steps {
		var next []*Element
		switch {
		case st.tag == ".":
			next = current
		case st.tag == "":
			// Bare predicate: filter the current set in place.
			for _, el := range current {
				if matchPred(el, st) {
					next = append(next, el)
				}
			}
		default:
			for _, el := range current {
				for _, child := range el.children {
					if child.tag != st.tag {
						continue
					}
					if st.hasPred && !matchPred(child, st) {
						continue
					}
					next = append(next, child)
				}
			}
		}
		current = next
	}
	return current
}

func matchPred(el *Element, st step) bool {
	v, ok := el.Attr(st.attrKey)
	return ok && v == st.attrValue
}

// parsePath splits a path expression into steps. The empty path and "."
// both address the context element.
func parsePath(path string) ([]step, bool) {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return []step{{tag: "."}}, true
	}

	var steps []step
	for _, raw := range splitSteps(path) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			// Leading "/" or an accidental "//": treat as a self step so
			// "./a//b" degrades to "./a/b" instead of matching nothing.
			continue
		}
		st, ok := parseStep(raw)
		if !ok {
			return nil, false
		}
		steps = append(steps, st)
	}
	if len(steps) == 0 {
		return nil, false
	}
	return steps, true
}

// splitSteps splits a path on "/", but only outside predicates and quoted
// values, so `./access[@origin="https://a.com"]` stays one step. An
// unterminated quote leaves the remainder in a single fragment, which
// parseStep then rejects.
func splitSteps(path string) []string {
	var (
		parts []string
		b     strings.Builder
		depth int
		quote byte
	)
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == '[':
			depth++
			b.WriteByte(c)
		case c == ']':
			if depth > 0 {
				depth--
			}
			b.WriteByte(c)
		case c == '/' && depth == 0:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(parts, b.String())
}

// parseStep parses one of: ".", "tag", "tag[@k="v"]", "[@k="v"]".
func parseStep(raw string) (step, bool) {
	if raw == "." {
		return step{tag: "."}, true
	}

	open := strings.Index(raw, "[")
	if open < 0 {
		if strings.ContainsAny(raw, "[]@=\"'") {
			return step{}, false
		}
		return step{tag: raw}, true
	}

	tag := raw[:open]
	pred := raw[open:]
	if !strings.HasSuffix(pred, "]") {
		return step{}, false
	}
	pred = pred[1 : len(pred)-1] // strip [ ]
	if !strings.HasPrefix(pred, "@") {
		return step{}, false
	}
	pred = pred[1:]

	eq := strings.Index(pred, "=")
	if eq < 0 {
		return step{}, false
	}
	key := pred[:eq]
	val := pred[eq+1:]
	if len(val) >= 2 && (val[0] == '"' && val[len(val)-1] == '"' || val[0] == '\'' && val[len(val)-1] == '\'') {
		val = val[1 : len(val)-1]
	} else {
		return step{}, false
	}
	if key == "" {
		return step{}, false
	}
	return step{tag: tag, attrKey: key, attrValue: val, hasPred: true}, true
}
