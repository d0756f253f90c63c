// SPDX-License-Identifier: MPL-2.0

// Package types defines the validated Value Types for widget manifest
// fields: application identifier, semantic version, platform version
// counters, and lifecycle hook types. Each type carries its own validation
// and a typed error that wraps a package-level sentinel, so callers can use
// errors.Is for programmatic detection and errors.As for details.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types
