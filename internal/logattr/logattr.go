// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logattr provides the slog.Attrs logged by the resolver.
package logattr

import (
	"log/slog"
)

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// EnvPrefix returns an slog.Attr for the environment variable prefix.
func EnvPrefix(prefix string) slog.Attr {
	return slog.String("env_prefix", prefix)
}

// DefaultPath returns an slog.Attr for the default config file path.
func DefaultPath(path string) slog.Attr {
	return slog.String("default_path", path)
}

// CustomPath returns an slog.Attr for the custom config file path.
func CustomPath(path string) slog.Attr {
	return slog.String("custom_path", path)
}

// Path returns an slog.Attr for a file path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Layer returns an slog.Attr naming a config layer.
func Layer(name string) slog.Attr {
	return slog.String("layer", name)
}

// Section returns an slog.Attr for a config section name.
func Section(name string) slog.Attr {
	return slog.String("section", name)
}

// Option returns an slog.Attr for a config option name.
func Option(name string) slog.Attr {
	return slog.String("option", name)
}

// Sections returns an slog.Attr for a slice of section names.
func Sections(names []string) slog.Attr {
	return slog.Any("sections", names)
}
