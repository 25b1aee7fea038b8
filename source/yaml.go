// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// InvalidYamlError occurs if a config file contains invalid YAML.
type InvalidYamlError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}

// ErrYamlRootNotMapping is the cause of an InvalidYamlError for a
// document which is not a mapping of sections and options.
var ErrYamlRootNotMapping = errors.New("yaml document is not a mapping")

func parseYaml(b []byte) (Map, error) {
	var doc yaml.Node
	err := yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, InvalidYamlError{Cause: err}
	}
	if len(doc.Content) == 0 {
		return make(Map), nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, InvalidYamlError{Cause: ErrYamlRootNotMapping}
	}
	return fromTree(yamlMapping(root))
}

// yamlTree converts a node into the generic tree shape fromTree walks.
// Scalars keep their text as written in the document.
func yamlTree(n *yaml.Node) any {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			items = append(items, yamlTree(item))
		}
		return items
	default:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return literal(n.Value)
	}
}

func yamlMapping(n *yaml.Node) map[string]any {
	tree := make(map[string]any, len(n.Content)/2)
	var merged []map[string]any
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == "!!merge" {
			merged = append(merged, yamlMerge(v)...)
			continue
		}
		tree[k.Value] = yamlTree(v)
	}

	// Keys written in the mapping itself win over merged ones.
	for _, m := range merged {
		for k, v := range m {
			if _, ok := tree[k]; !ok {
				tree[k] = v
			}
		}
	}
	return tree
}

func yamlMerge(n *yaml.Node) []map[string]any {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return []map[string]any{yamlMapping(n)}
	case yaml.SequenceNode:
		var ms []map[string]any
		for _, item := range n.Content {
			ms = append(ms, yamlMerge(item)...)
		}
		return ms
	default:
		return nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
