// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package layconf resolves configuration options from three layers.
//
// An option is addressed by a section and an option name and is searched for,
// first match wins, in:
//
//   - the process environment, under the name prefix_SECTION_option
//   - an optional custom file, typically per deployment
//   - a required default file which should declare every option
//
// # Basic Usage
//
//	r, err := layconf.New("cfg/default.ini",
//	    layconf.WithCustomFile("cfg/staging.ini"),
//	    layconf.WithEnvPrefix("example"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	env, err := r.Get("DATABASE", "env_name")
//	size, err := r.GetInt("LOG", "file_rotation_size_mb")
//
// # Fallbacks
//
// Every getter accepts an optional typed [Fallback]. Without one a missing
// option is a [NotFoundError]; with one the fallback is returned as-is:
//
//	foo, _ := r.Get("FOO", "foo", layconf.Or("bar"))
//	n, _ := r.GetInt("FOO", "foo_number", layconf.Or(33))
//
// A fallback only covers absence. A value which is present but can not be
// coerced is always reported as a [MalformedValueError].
//
// # Sections
//
// [Resolver.Section] returns a view bound to one section:
//
//	log := r.Section("LOG")
//	enabled, err := log.Value("file_enabled")
//	backups, err := log.GetInt("file_backup_count")
//
// # File formats
//
// Files are parsed by extension: .yaml/.yml, .json and .toml are structured
// formats whose top-level mappings are sections, everything else is INI.
// Option names are case-insensitive and options of the DEFAULT section are
// inherited by all other sections of the same file. Values are returned as
// written in the file.
//
// INI values support %(name)s references to options of the same section or
// of DEFAULT, and "%%" for a literal percent sign. Unlike Python's
// configparser, a value wrapped in backticks or triple double quotes is
// unwrapped.
//
// # Coercion
//
// Integers and floats are trimmed and may separate digits with underscores,
// as in "1_000". Booleans are matched without trimming.
//
// Empty section, option or default path arguments are programming errors
// and cause a panic with a [BlankArgumentError]. A custom file which does
// not exist is skipped.
package layconf
