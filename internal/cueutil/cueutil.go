// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user-authored CUE files against an embedded
// schema and reports failures with the path of the offending field.
package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// Unify compiles the embedded schema, looks up the definition at defPath
// (e.g. "#Config"), compiles the user data, and unifies the two. The
// returned value is validated; decoding it is left to the caller so each
// consumer can pick its own target shape.
func Unify(schema, defPath string, data []byte, filename string) (cue.Value, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(defPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(); err != nil {
		return cue.Value{}, FormatError(err, filename)
	}
	return unified, nil
}

// CheckSize rejects files above maxSize. Configuration files measured in
// megabytes are a mistake, not a configuration.
func CheckSize(data []byte, maxSize int, filename string) error {
	if len(data) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}

// FormatError rewrites a CUE error as "<file>: <json-path>: <message>",
// one line per underlying error. Non-CUE errors pass through with just
// the filename prefix.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	cueErrs := errors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var lines []string
	for _, e := range cueErrs {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path inside the message itself.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// formatPath converts a CUE error path (["hooks", "0", "src"]) to the
// JSON-path notation users expect ("hooks[0].src").
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
