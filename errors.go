// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

import (
	"fmt"
)

// BlankArgumentError is the panic value used when a required
// argument (default path, section or option) is the empty string.
type BlankArgumentError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e BlankArgumentError) Error() string {
	return fmt.Sprintf("layconf: %s must not be blank", e.Name)
}

// NotFoundError is returned when no layer holds a value for the
// requested section and option and no fallback was supplied.
type NotFoundError struct {
	Section string
	Option  string
}

// Error implements the [builtin.error] interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("configuration value for %s/%s not found", e.Section, e.Option)
}

// MalformedValueError is returned when a resolved value can not be
// coerced to the requested type. It is never replaced by a fallback.
type MalformedValueError struct {
	Section string
	Option  string
	Value   string
	Type    string
	Cause   error
}

// Error implements the [builtin.error] interface.
func (e MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s value for %s/%s: %q: %s", e.Type, e.Section, e.Option, e.Value, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MalformedValueError) Unwrap() error {
	return e.Cause
}

// LoadError is returned by [New] when a config file can not be read or parsed.
type LoadError struct {
	Layer Origin
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e LoadError) Error() string {
	return fmt.Sprintf("failed to load %s config file %s: %s", e.Layer, e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e LoadError) Unwrap() error {
	return e.Cause
}

// DecodeError is returned by [Section.Decode].
type DecodeError struct {
	Section string
	Cause   error
}

// Error implements the [builtin.error] interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode config section %s: %s", e.Section, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e DecodeError) Unwrap() error {
	return e.Cause
}
