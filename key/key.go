// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides the naming rules for configuration keys.
package key

import (
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Chain represents nested keys.
type Chain []Keyer

// Key implements the [Keyer] interface. Nested names are joined with ".",
// which is how nested options of structured config files are named.
func (k Chain) Key() string {
	return k.Join(".")
}

// Join joins the non-empty keys of the chain with the given separator.
func (k Chain) Join(sep string) string {
	ss := make([]string, 0, len(k))
	for _, keyer := range k {
		s := keyer.Key()
		if s == "" {
			continue
		}
		ss = append(ss, s)
	}
	return strings.Join(ss, sep)
}

// Name represents a single key. Name can be used other keys.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Env derives the environment variable name for the given section and option.
// An empty prefix is omitted entirely instead of producing a leading "_".
//
//	Env("example", "DATABASE", "env_name") == "example_DATABASE_env_name"
//	Env("", "DATABASE", "env_name") == "DATABASE_env_name"
func Env(prefix, section, option string) string {
	return Chain{Name(prefix), Name(section), Name(option)}.Join("_")
}
