// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides the layers a configuration value can be resolved from.
package source

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/z5labs/layconf/key"
)

// DefaultSection names the section whose options are inherited by every
// other section of the same file.
const DefaultSection = "DEFAULT"

// Source is a single configuration layer.
type Source interface {
	// Lookup reports the value stored for the given section and option
	// and whether it was present at all.
	Lookup(section, option string) (string, bool)
}

// Map is an immutable, parsed configuration file keyed by section and then
// option. Option names are case-insensitive, section names are not.
type Map map[string]map[string]string

// Lookup implements the [Source] interface. Options of the [DefaultSection]
// are visible through every section which exists in the Map.
func (m Map) Lookup(section, option string) (string, bool) {
	opts, ok := m[section]
	if !ok {
		return "", false
	}

	option = strings.ToLower(option)
	if v, ok := opts[option]; ok {
		return v, true
	}
	if section == DefaultSection {
		return "", false
	}
	v, ok := m[DefaultSection][option]
	return v, ok
}

// Sections returns the sorted section names, excluding the [DefaultSection].
func (m Map) Sections() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		if name == DefaultSection {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Options returns the sorted option names visible through the given section,
// including those inherited from the [DefaultSection].
func (m Map) Options(section string) []string {
	opts, ok := m[section]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	if section != DefaultSection {
		for name := range m[DefaultSection] {
			if _, shadowed := opts[name]; shadowed {
				continue
			}
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (m Map) section(name string) map[string]string {
	opts, ok := m[name]
	if !ok {
		opts = make(map[string]string)
		m[name] = opts
	}
	return opts
}

// UnsupportedValueError occurs when a structured config file holds a value
// which can not be represented as a single option string, e.g. a list.
type UnsupportedValueError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported config value type %T for key: %s", e.Value, e.Key)
}

// fromTree converts a decoded YAML, JSON or TOML document into a Map.
// Top-level mappings become sections, top-level scalars belong to the
// DefaultSection and deeper mappings are flattened into dotted option names.
func fromTree(tree map[string]any) (Map, error) {
	m := make(Map)
	for name, v := range tree {
		sub, ok := asMap(v)
		if !ok {
			option := key.Name(name)
			err := setScalar(m.section(DefaultSection), option, option, v)
			if err != nil {
				return nil, err
			}
			continue
		}

		err := walkTree(m.section(name), sub, key.Chain{key.Name(name)}, nil)
		if err != nil {
			return nil, err
		}
	}
	if len(m[DefaultSection]) == 0 {
		delete(m, DefaultSection)
	}
	return m, nil
}

func walkTree(opts map[string]string, tree map[string]any, section key.Keyer, chain key.Chain) error {
	for name, v := range tree {
		option := append(slices.Clone(chain), key.Name(name))
		if sub, ok := asMap(v); ok {
			err := walkTree(opts, sub, section, option)
			if err != nil {
				return err
			}
			continue
		}

		err := setScalar(opts, option, key.Chain{section, option}, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func setScalar(opts map[string]string, option, full key.Keyer, v any) error {
	s, ok, err := stringify(v)
	if err != nil {
		return UnsupportedValueError{Key: full.Key(), Value: v}
	}
	if !ok {
		return nil
	}
	opts[strings.ToLower(option.Key())] = s
	return nil
}

var errNotScalar = errors.New("not a scalar value")

// literal is a scalar kept as the text it was written as.
type literal string

// stringify renders a scalar. Null values are reported as not present.
func stringify(v any) (string, bool, error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case literal:
		return string(x), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case time.Time:
		return x.Format(time.RFC3339Nano), true, nil
	case []any:
		return "", false, errNotScalar
	case fmt.Stringer:
		return x.String(), true, nil
	default:
		return fmt.Sprint(x), true, nil
	}
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return m, true
	default:
		return nil, false
	}
}
