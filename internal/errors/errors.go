// Package errors provides standardized error types for the analytics engine.
// This package defines QueryError for consistent argument validation across
// all query functions and LoadError for repository load failures, both with
// operation context and error wrapping support.
package errors

import (
	"fmt"
)

// QueryError represents an invalid-argument failure raised by a query function.
// Absence of a matching record is never a QueryError; queries report "no data"
// through empty or optional results.
type QueryError struct {
	Op      string // Query name (e.g., "MostPopulousInRegion", "FirstNames")
	Param   string // Offending parameter if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: invalid argument %q: %s", e.Op, e.Param, e.Message)
	}
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *QueryError) Is(target error) bool {
	if qe, ok := target.(*QueryError); ok {
		return e.Op == qe.Op && e.Param == qe.Param && e.Message == qe.Message
	}
	return false
}

// LoadError represents a fatal repository load failure: the source was
// unreadable or malformed. It is surfaced to the caller and never retried.
type LoadError struct {
	Path    string // Source locator
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loading %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("load failed: %s", e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Common error constructors for consistent error creation

// NewNilCollectionError creates an error for queries invoked with a nil
// record collection. An empty collection is valid input; nil is not.
func NewNilCollectionError(op string) *QueryError {
	return &QueryError{
		Op:      op,
		Message: "collection must not be nil",
	}
}

// NewNegativeCountError creates an error for top-N queries with a negative n
func NewNegativeCountError(op string, n int) *QueryError {
	return &QueryError{
		Op:      op,
		Param:   fmt.Sprintf("%d", n),
		Message: "count must not be negative",
	}
}

// NewInvalidInputError creates an error for invalid query parameters
func NewInvalidInputError(op, param, message string) *QueryError {
	return &QueryError{
		Op:      op,
		Param:   param,
		Message: message,
	}
}

// NewLoadError creates an error for unreadable or malformed sources
func NewLoadError(path, message string, cause error) *LoadError {
	return &LoadError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
