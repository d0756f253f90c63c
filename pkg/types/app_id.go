// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidAppID is the sentinel error wrapped by InvalidAppIDError.
var ErrInvalidAppID = errors.New("invalid application id")

type (
	// AppID is the reverse-domain style application identifier written to
	// the manifest root's "id" attribute (e.g. "com.example.app").
	AppID string

	// InvalidAppIDError is returned when an AppID does not match the
	// identifier pattern.
	InvalidAppIDError struct {
		Value AppID
	}
)

// String returns the string representation of the AppID.
func (id AppID) String() string { return string(id) }

// Validate returns nil if the AppID matches the identifier pattern.
func (id AppID) Validate() error {
	if !patterns["id"].MatchString(string(id)) {
		return &InvalidAppIDError{Value: id}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidAppIDError) Error() string {
	return fmt.Sprintf("invalid application id %q: must start and end alphanumeric, with only letters, digits, '-', '.' or '_' in between", e.Value)
}

// Unwrap returns ErrInvalidAppID for errors.Is() compatibility.
func (e *InvalidAppIDError) Unwrap() error { return ErrInvalidAppID }
