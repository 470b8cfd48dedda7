// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resolver

import "fmt"

// UnknownExtensionError occurs when neither an override nor a built-in
// parser claims the file's extension.
type UnknownExtensionError struct {
	Ext string
}

// Error implements the error interface.
func (e UnknownExtensionError) Error() string {
	return fmt.Sprintf("no parser found for extension: %q", e.Ext)
}

// LoaderNotFoundError occurs when an override entry points at a parser
// plugin file that does not exist.
type LoaderNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e LoaderNotFoundError) Error() string {
	return fmt.Sprintf("parser plugin not found: %s", e.Path)
}

// NoParserError occurs when an override plugin file exists but does not
// provide a conforming parser implementation.
type NoParserError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e NoParserError) Error() string {
	return fmt.Sprintf("no valid parser implementation in %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e NoParserError) Unwrap() error {
	return e.Cause
}
