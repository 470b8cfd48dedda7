// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parser

import "fmt"

// NotFoundError occurs when the settings file does not exist. It is
// never swallowed, even outside strict mode.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("settings file not found: %s", e.Path)
}

// ReadError occurs when the settings file exists but reading it fails.
type ReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ReadError) Error() string {
	return fmt.Sprintf("failed to read settings file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ReadError) Unwrap() error {
	return e.Cause
}

// ParseError occurs when the file content is not well-formed for the
// parser's format. It carries the underlying syntax diagnostic.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse settings file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

// StructureError occurs when a document parses but its root is not an
// aggregate, so no sections can be derived from it.
type StructureError struct {
	Path string
	Got  string
}

// Error implements the error interface.
func (e StructureError) Error() string {
	return fmt.Sprintf("settings file %s must contain an object at the top level, got %s", e.Path, e.Got)
}
