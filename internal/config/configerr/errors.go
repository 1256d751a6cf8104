// Package configerr collects validation failures from the binding config
// loaders (internal/config/jsonbindings, internal/config/luabindings), in
// the shape internal/config/schema/errors.go uses: a path-addressed error
// plus a collector that turns into a plain error only once something has
// actually gone wrong.
package configerr

import (
	"fmt"
	"strings"
)

// ValidationError is a single failure at a specific location in a
// binding source file (a JSON array index, a Lua bind() call number).
type ValidationError struct {
	Path    string
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every failure found while loading one source,
// so a file with three bad bindings reports all three instead of stopping
// at the first.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Error implements error.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e.Errors), strings.Join(msgs, "\n  - "))
}

// Add appends a validation error built from path and message.
func (e *ValidationErrors) Add(path, message string) {
	e.Errors = append(e.Errors, &ValidationError{Path: path, Message: message})
}

// Merge appends every error from other, if any.
func (e *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	e.Errors = append(e.Errors, other.Errors...)
}

// HasErrors reports whether anything has been added.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// AsError returns nil if HasErrors is false, otherwise e itself.
func (e *ValidationErrors) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}
