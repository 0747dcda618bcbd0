// Package mapstore provides an otree backing store over nested
// map[string]any trees, the shape produced by decoding JSON, TOML or YAML
// into untyped Go values. Interior nodes are map[string]any; leaves are any
// scalar or slice value.
package mapstore

import (
	"reflect"

	"github.com/dshills/otree"
)

// Store implements otree.Store for nested map[string]any values. The zero
// value is ready to use; nil is the empty sentinel.
type Store struct{}

// New returns a map store.
func New() Store {
	return Store{}
}

// Get walks path through nested maps and returns the reached value, or nil
// if any segment is absent or an intermediate value is not a map.
func (s Store) Get(node any, path otree.Path) any {
	current := node
	for i := 0; i < path.Len(); i++ {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[path.At(i)]
		if !ok {
			return nil
		}
	}
	return current
}

// Child returns the value of the single immediate child key, or nil.
func (s Store) Child(node any, key string) any {
	if m, ok := node.(map[string]any); ok {
		return m[key]
	}
	return nil
}

// Set writes value at path, creating intermediate maps as needed, and
// returns the root. A nil or non-map node is replaced by a fresh map; an
// empty path replaces the node with value outright.
func (s Store) Set(node any, path otree.Path, value any) any {
	if path.IsEmpty() {
		return value
	}

	root, ok := node.(map[string]any)
	if !ok || root == nil {
		root = make(map[string]any)
	}

	current := root
	for i := 0; i < path.Len()-1; i++ {
		key := path.At(i)
		next, ok := current[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	current[path.At(path.Len()-1)] = value
	return root
}

// Equal reports deep structural equality.
func (s Store) Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// IsEmpty reports whether node is nil or an empty map.
func (s Store) IsEmpty(node any) bool {
	if node == nil {
		return true
	}
	if m, ok := node.(map[string]any); ok {
		return len(m) == 0
	}
	return false
}

// Clone returns a deep copy of node. Maps and slices are copied
// recursively; scalar leaves are returned as-is.
func (s Store) Clone(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = s.Clone(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, value := range v {
			out[i] = s.Clone(value)
		}
		return out
	default:
		return node
	}
}

var _ otree.Store[any] = Store{}
