// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidAndroidVersionCode is the sentinel error wrapped by
	// InvalidAndroidVersionCodeError.
	ErrInvalidAndroidVersionCode = errors.New("invalid android versionCode")

	// ErrInvalidIOSBundleVersion is the sentinel error wrapped by
	// InvalidIOSBundleVersionError.
	ErrInvalidIOSBundleVersion = errors.New("invalid ios CFBundleVersion")
)

type (
	// Version is the application version written to the manifest root's
	// "version" attribute: strict MAJOR.MINOR.PATCH with non-negative
	// integer components.
	Version string

	// InvalidVersionError is returned when a Version is not of the form
	// MAJOR.MINOR.PATCH.
	InvalidVersionError struct {
		Value Version
	}

	// AndroidVersionCode is the Android build counter written to the
	// manifest root's "android-versionCode" attribute: digits only.
	AndroidVersionCode string

	// InvalidAndroidVersionCodeError is returned when an AndroidVersionCode
	// contains anything but digits.
	InvalidAndroidVersionCodeError struct {
		Value AndroidVersionCode
	}

	// IOSBundleVersion is the iOS build version written to the manifest
	// root's "ios-CFBundleVersion" attribute: one to three dot-separated
	// components, the first without a leading zero.
	IOSBundleVersion string

	// InvalidIOSBundleVersionError is returned when an IOSBundleVersion
	// does not match the bundle version pattern.
	InvalidIOSBundleVersionError struct {
		Value IOSBundleVersion
	}
)

// String returns the string representation of the Version.
func (v Version) String() string { return string(v) }

// Validate returns nil if the Version is a strict MAJOR.MINOR.PATCH triple.
func (v Version) Validate() error {
	if !patterns["version"].MatchString(string(v)) {
		return &InvalidVersionError{Value: v}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: must be MAJOR.MINOR.PATCH with numeric components", e.Value)
}

// Unwrap returns ErrInvalidVersion for errors.Is() compatibility.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// String returns the string representation of the AndroidVersionCode.
func (c AndroidVersionCode) String() string { return string(c) }

// Validate returns nil if the AndroidVersionCode is digits only.
func (c AndroidVersionCode) Validate() error {
	if !patterns["android-versionCode"].MatchString(string(c)) {
		return &InvalidAndroidVersionCodeError{Value: c}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidAndroidVersionCodeError) Error() string {
	return fmt.Sprintf("invalid android versionCode %q: must contain digits only", e.Value)
}

// Unwrap returns ErrInvalidAndroidVersionCode for errors.Is() compatibility.
func (e *InvalidAndroidVersionCodeError) Unwrap() error { return ErrInvalidAndroidVersionCode }

// String returns the string representation of the IOSBundleVersion.
func (v IOSBundleVersion) String() string { return string(v) }

// Validate returns nil if the IOSBundleVersion has one to three numeric
// components and no leading zero on the first.
func (v IOSBundleVersion) Validate() error {
	if !patterns["ios-CFBundleVersion"].MatchString(string(v)) {
		return &InvalidIOSBundleVersionError{Value: v}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidIOSBundleVersionError) Error() string {
	return fmt.Sprintf("invalid ios CFBundleVersion %q: must be one to three dot-separated numbers, first without a leading zero", e.Value)
}

// Unwrap returns ErrInvalidIOSBundleVersion for errors.Is() compatibility.
func (e *InvalidIOSBundleVersionError) Unwrap() error { return ErrInvalidIOSBundleVersion }
