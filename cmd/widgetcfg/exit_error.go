// SPDX-License-Identifier: MPL-2.0

package main

import "fmt"

// ExitError carries an explicit process exit code through Cobra's error
// return path, so a failing hook script's status survives to the shell.
type ExitError struct {
	Code  int
	Cause error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ExitError) Unwrap() error { return e.Cause }
