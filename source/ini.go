// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

// InvalidIniError occurs if a config file contains invalid INI.
type InvalidIniError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidIniError) Error() string {
	return fmt.Sprintf("invalid ini: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidIniError) Unwrap() error {
	return e.Cause
}

// InterpolationError occurs if an INI value holds a malformed or
// unresolvable %(name)s reference.
type InterpolationError struct {
	Section string
	Option  string
	Cause   error
}

// Error implements the error interface.
func (e InterpolationError) Error() string {
	return fmt.Sprintf("bad interpolation in %s/%s: %s", e.Section, e.Option, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InterpolationError) Unwrap() error {
	return e.Cause
}

// UnknownReferenceError occurs if a %(name)s reference names an option
// which is neither in the same section nor in DEFAULT.
type UnknownReferenceError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownReferenceError) Error() string {
	return fmt.Sprintf("reference to unknown option: %s", e.Name)
}

// ErrInterpolationDepth is returned for references nested deeper
// than maxInterpolationDepth, which includes reference cycles.
var ErrInterpolationDepth = errors.New("interpolation nested too deeply")

// ErrBadInterpolation is returned for a "%" which is neither "%%" nor
// the start of a %(name)s reference.
var ErrBadInterpolation = errors.New("'%' must be followed by '%' or '('")

const maxInterpolationDepth = 10

var referencePattern = regexp.MustCompile(`^%\(([^)]+)\)s`)

// iniOptions mirror the classic INI dialect: option names are
// case-insensitive, "=" and ":" both delimit values, "#" and ";" only
// start a comment at the beginning of a line, quotes and trailing
// backslashes are kept and indented lines continue the previous value.
var iniOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
	KeyValueDelimiters:         "=:",
}

func parseIni(b []byte) (Map, error) {
	f, err := ini.LoadSources(iniOptions, b)
	if err != nil {
		return nil, InvalidIniError{Cause: err}
	}

	var names []string
	raw := make(Map)
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}

		names = append(names, sec.Name())
		opts := raw.section(sec.Name())
		for _, k := range keys {
			opts[k.Name()] = k.Value()
		}
	}

	m := make(Map, len(raw))
	for _, name := range names {
		err := interpolateSection(m.section(name), raw, name)
		if err != nil {
			return nil, InvalidIniError{Cause: err}
		}
	}
	return m, nil
}

// interpolateSection expands the references of every option visible
// through the named section. Inherited DEFAULT options are only copied
// into the section when they hold a reference, since their expansion
// depends on the section they are read through.
func interpolateSection(dst map[string]string, raw Map, name string) error {
	own := raw[name]
	vars := make(map[string]string, len(own)+len(raw[DefaultSection]))
	maps.Copy(vars, raw[DefaultSection])
	maps.Copy(vars, own)

	options := make([]string, 0, len(vars))
	for option := range vars {
		options = append(options, option)
	}
	slices.Sort(options)
	for _, option := range options {
		v := vars[option]
		if _, ok := own[option]; !ok && !strings.Contains(v, "%") {
			continue
		}

		s, err := interpolate(vars, v, 1)
		if err != nil {
			return InterpolationError{Section: name, Option: option, Cause: err}
		}
		dst[option] = s
	}
	return nil
}

// interpolate replaces "%%" with "%" and %(name)s with the expanded
// value of name in vars.
func interpolate(vars map[string]string, value string, depth int) (string, error) {
	if depth > maxInterpolationDepth {
		return "", ErrInterpolationDepth
	}

	var sb strings.Builder
	rest := value
	for rest != "" {
		i := strings.IndexByte(rest, '%')
		if i < 0 {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:i])
		rest = rest[i:]

		switch {
		case strings.HasPrefix(rest, "%%"):
			sb.WriteByte('%')
			rest = rest[2:]
		case strings.HasPrefix(rest, "%("):
			ref := referencePattern.FindStringSubmatch(rest)
			if ref == nil {
				return "", ErrBadInterpolation
			}
			rest = rest[len(ref[0]):]

			name := strings.ToLower(ref[1])
			v, ok := vars[name]
			if !ok {
				return "", UnknownReferenceError{Name: name}
			}
			if strings.Contains(v, "%") {
				var err error
				v, err = interpolate(vars, v, depth+1)
				if err != nil {
					return "", err
				}
			}
			sb.WriteString(v)
		default:
			return "", ErrBadInterpolation
		}
	}
	return sb.String(), nil
}
