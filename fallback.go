// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

// Fallback is either no fallback at all, its zero value, or a value
// to return when an option can not be resolved from any layer.
type Fallback[T any] struct {
	value T
	set   bool
}

// Or returns a Fallback holding v.
func Or[T any](v T) Fallback[T] {
	return Fallback[T]{value: v, set: true}
}

// NoFallback returns the Fallback which makes a missing option an error.
func NoFallback[T any]() Fallback[T] {
	return Fallback[T]{}
}

// Value returns the fallback value and whether one was supplied.
func (f Fallback[T]) Value() (T, bool) {
	return f.value, f.set
}

// firstFallback returns the first supplied fallback.
func firstFallback[T any](fbs []Fallback[T]) (T, bool) {
	for _, fb := range fbs {
		if v, ok := fb.Value(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
