// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"os"

	"github.com/z5labs/layconf/key"
)

// LookupFunc reports the value of a single environment variable
// and whether it is set.
type LookupFunc func(string) (string, bool)

// Env represents a Source where its underlying values
// are extracted from environment variables. It is never
// snapshotted, every Lookup reflects the current environment.
type Env struct {
	prefix string
	lookup LookupFunc
}

// FromEnv returns a Source which resolves options from the
// environment variables available to the current process.
func FromEnv(prefix string) Env {
	return FromEnvLookup(prefix, os.LookupEnv)
}

// FromEnvLookup returns a Source which resolves options through f.
func FromEnvLookup(prefix string, f LookupFunc) Env {
	if f == nil {
		f = os.LookupEnv
	}
	return Env{
		prefix: prefix,
		lookup: f,
	}
}

// Key returns the environment variable name the option is read from.
func (src Env) Key(section, option string) string {
	return key.Env(src.prefix, section, option)
}

// Lookup implements the Source interface. A variable which is set
// to the empty string is still reported as present.
func (src Env) Lookup(section, option string) (string, bool) {
	return src.lookup(src.Key(section, option))
}
