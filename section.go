// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

import (
	"slices"
	"time"
)

// Section is a view of a [Resolver] bound to a single section name.
// It holds no state of its own and is safe to copy.
type Section struct {
	r    *Resolver
	name string
}

// Name returns the section name.
func (s Section) Name() string {
	return s.name
}

// Value returns the resolved value of option or a [NotFoundError].
func (s Section) Value(option string) (string, error) {
	return s.r.Get(s.name, option)
}

// Get returns the resolved value of option. Unlike [Resolver.Get] a
// missing option is not an error: the first supplied fallback, or the
// empty string if there is none, is returned instead.
func (s Section) Get(option string, fallback ...Fallback[string]) string {
	v, err := s.r.Get(s.name, option, fallback...)
	if err != nil {
		return ""
	}
	return v
}

// Lookup reports the resolved value of option and whether it was found.
func (s Section) Lookup(option string) (string, bool) {
	v, _, found := s.r.Lookup(s.name, option)
	return v, found
}

// GetInt is [Resolver.GetInt] bound to the section.
func (s Section) GetInt(option string, fallback ...Fallback[int]) (int, error) {
	return s.r.GetInt(s.name, option, fallback...)
}

// GetFloat is [Resolver.GetFloat] bound to the section.
func (s Section) GetFloat(option string, fallback ...Fallback[float64]) (float64, error) {
	return s.r.GetFloat(s.name, option, fallback...)
}

// GetBool is [Resolver.GetBool] bound to the section.
func (s Section) GetBool(option string, fallback ...Fallback[bool]) (bool, error) {
	return s.r.GetBool(s.name, option, fallback...)
}

// GetDuration is [Resolver.GetDuration] bound to the section.
func (s Section) GetDuration(option string, fallback ...Fallback[time.Duration]) (time.Duration, error) {
	return s.r.GetDuration(s.name, option, fallback...)
}

// Options returns the sorted option names the config files declare
// for this section, including those inherited from DEFAULT.
func (s Section) Options() []string {
	var names []string
	for _, m := range s.r.files {
		names = append(names, m.Options(s.name)...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Decode resolves every option returned by [Section.Options], so
// environment overrides apply, and decodes them into v, which must be a
// pointer to a struct or map. Struct fields are matched by their
// `config` tag or, case-insensitively, by name.
func (s Section) Decode(v any) error {
	values := make(map[string]any)
	for _, option := range s.Options() {
		val, err := s.Value(option)
		if err != nil {
			return DecodeError{Section: s.name, Cause: err}
		}
		values[option] = val
	}

	err := decode(values, v)
	if err != nil {
		return DecodeError{Section: s.name, Cause: err}
	}
	return nil
}
