// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidHookType is the sentinel error wrapped by InvalidHookTypeError.
var ErrInvalidHookType = errors.New("invalid hook type")

type (
	// HookType names a lifecycle event a hook script may attach to
	// (e.g. "before_build"). Only the members of HookTypes are valid.
	HookType string

	// InvalidHookTypeError is returned when a HookType is not a recognized
	// lifecycle event name.
	InvalidHookTypeError struct {
		Value HookType
	}
)

// HookTypes is the closed set of recognized lifecycle event names, in the
// order hooks fire around each command. Note the asymmetry at the end of the
// plugin group: plugin_uninstall has a before event only.
var HookTypes = []HookType{
	"before_build", "after_build",
	"before_compile", "after_compile",
	"before_clean", "after_clean",
	"before_docs", "after_docs",
	"before_emulate", "after_emulate",
	"before_platform_add", "after_platform_add",
	"before_platform_rm", "after_platform_rm",
	"before_platform_ls", "after_platform_ls",
	"before_plugin_add", "after_plugin_add",
	"before_plugin_ls", "after_plugin_ls",
	"before_plugin_rm", "after_plugin_rm",
	"before_plugin_search", "after_plugin_search",
	"before_plugin_install", "after_plugin_install",
	"before_plugin_uninstall",
	"before_prepare", "after_prepare",
	"before_run", "after_run",
	"before_serve", "after_serve",
	"pre_package",
}

var hookTypeSet = func() map[HookType]struct{} {
	set := make(map[HookType]struct{}, len(HookTypes))
	for _, h := range HookTypes {
		set[h] = struct{}{}
	}
	return set
}()

// String returns the string representation of the HookType.
func (h HookType) String() string { return string(h) }

// Validate returns nil if the HookType is a recognized lifecycle event name.
func (h HookType) Validate() error {
	if _, ok := hookTypeSet[h]; !ok {
		return &InvalidHookTypeError{Value: h}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidHookTypeError) Error() string {
	return fmt.Sprintf("invalid hook type %q: not a recognized lifecycle event", e.Value)
}

// Unwrap returns ErrInvalidHookType for errors.Is() compatibility.
func (e *InvalidHookTypeError) Unwrap() error { return ErrInvalidHookType }
