// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// InvalidTomlError occurs if a config file contains invalid TOML.
type InvalidTomlError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidTomlError) Error() string {
	return fmt.Sprintf("invalid toml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidTomlError) Unwrap() error {
	return e.Cause
}

func parseToml(b []byte) (Map, error) {
	tree := make(map[string]any)
	err := toml.Unmarshal(b, &tree)
	if err != nil {
		return nil, InvalidTomlError{Cause: err}
	}
	overlayLiterals(tree, tomlLiterals(b), nil)
	return fromTree(tree)
}

// pathSep joins the parts of a TOML key path. Quoted keys may contain
// dots, so a control character is used instead.
const pathSep = "\x1f"

// tomlLiterals maps the key path of every number and date in a TOML
// document to its text as written. Values under array tables are not
// collected since those can not be represented as options anyway.
func tomlLiterals(b []byte) map[string]string {
	lits := make(map[string]string)

	var p unstable.Parser
	p.Reset(b)

	var table []string
	inArray := false
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table:
			table = keyParts(e.Key())
			inArray = false
		case unstable.ArrayTable:
			inArray = true
		case unstable.KeyValue:
			if inArray {
				continue
			}
			path := append(slices.Clone(table), keyParts(e.Key())...)
			collectLiterals(lits, path, e.Value())
		}
	}
	return lits
}

func collectLiterals(lits map[string]string, path []string, v *unstable.Node) {
	switch v.Kind {
	case unstable.Integer, unstable.Float, unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		lits[strings.Join(path, pathSep)] = string(v.Data)
	case unstable.InlineTable:
		it := v.Children()
		for it.Next() {
			kv := it.Node()
			collectLiterals(lits, append(slices.Clone(path), keyParts(kv.Key())...), kv.Value())
		}
	}
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// overlayLiterals replaces decoded numbers and dates in tree with
// their text as written.
func overlayLiterals(tree map[string]any, lits map[string]string, path []string) {
	for name, v := range tree {
		p := append(slices.Clone(path), name)
		if sub, ok := v.(map[string]any); ok {
			overlayLiterals(sub, lits, p)
			continue
		}
		if s, ok := lits[strings.Join(p, pathSep)]; ok {
			tree[name] = literal(s)
		}
	}
}
