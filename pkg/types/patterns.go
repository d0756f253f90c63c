// SPDX-License-Identifier: MPL-2.0

package types

import "regexp"

// Field patterns are kept in one table so validation stays data-driven and
// the table can be exercised directly by table tests.
var patterns = map[string]*regexp.Regexp{
	// IRI-like application identifier: alphanumeric start and end, interior
	// may contain hyphens, dots and word characters, with an optional
	// port-style suffix and an optional path segment.
	"id": regexp.MustCompile(`^[a-zA-Z0-9]([\w.-]*[a-zA-Z0-9])?(:\d+)?(/[-\w.~!$&'()*+,;=:@%]*)?$`),

	// MAJOR.MINOR.PATCH with non-negative integer components and no
	// pre-release or build metadata.
	"version": regexp.MustCompile(`^\d+\.\d+\.\d+$`),

	// Android versionCode: a bare integer counter.
	"android-versionCode": regexp.MustCompile(`^\d+$`),

	// iOS CFBundleVersion: one to three dot-separated components, the first
	// without a leading zero.
	"ios-CFBundleVersion": regexp.MustCompile(`^(0|[1-9]\d*)(\.\d+){0,2}$`),
}
