// SPDX-License-Identifier: MPL-2.0

// Package widgetfile loads, mutates, and persists widget application
// manifests: XML documents whose root element is <widget>, carrying the
// application identity (id, version, name, description, author), platform
// version counters, preferences (optionally scoped to a platform), the
// network access-origin allowlist, lifecycle hook declarations, and
// arbitrary injected fragments.
//
// All mutation operations are synchronous, act on a single *Widgetfile, and
// are idempotent under re-application with the same arguments, except
// AddHook which is append-only. A setter either fully applies its change or
// returns an error before touching the document; no partial mutation is
// ever left behind. One goroutine owns one Widgetfile for the duration of a
// batch of edits; no internal locking is performed, and a SaveAsync must be
// observed complete before further mutation.
package widgetfile
