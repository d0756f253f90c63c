// SPDX-License-Identifier: MPL-2.0

// Package issue turns the errors surfaced by the manifest core into
// user-facing diagnostics: a structured ActionableError carrying operation,
// resource, and fix suggestions, plus rendered markdown guidance for the
// recurring failure classes.
package issue

import (
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is an error with context for user-facing error
	// messages: what was attempted, on which file, and how to fix it.
	//
	// Use the ErrorContext builder for convenient construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load manifest").
	//		WithResource("./config.xml").
	//		WithSuggestion("Run 'widgetcfg init' to create one").
	//		Wrap(originalErr).
	//		Build()
	ActionableError struct {
		// Operation describes what was being attempted (e.g. "load manifest").
		Operation string

		// Resource identifies the file or entity involved (optional).
		Resource string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Cause is the underlying error that triggered this error (optional).
		Cause error
	}

	// ErrorContext is a builder for constructing ActionableError instances.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithOperation wraps an error with operation context.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapWithContext wraps an error with operation and resource context.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error implements the error interface. The message is the concise single
// line used in non-verbose output; suggestions are rendered separately.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// WithOperation sets the operation being attempted.
func (c *ErrorContext) WithOperation(operation string) *ErrorContext {
	c.operation = operation
	return c
}

// WithResource sets the file or entity involved.
func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

// WithSuggestion appends a fix suggestion.
func (c *ErrorContext) WithSuggestion(suggestion string) *ErrorContext {
	c.suggestions = append(c.suggestions, suggestion)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build constructs the ActionableError.
func (c *ErrorContext) Build() *ActionableError {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Cause:       c.cause,
	}
}
