// Package jsonstore provides an otree backing store over raw JSON documents.
// Nodes are immutable JSON fragments; path reads go through gjson and path
// writes through sjson, so no intermediate decode of the whole document is
// needed.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/otree"
)

// Node is a raw JSON document or fragment. The zero value represents
// "no value"; a JSON null is treated the same way.
type Node string

// ErrInvalidJSON is returned by FromBytes for malformed documents.
var ErrInvalidJSON = errors.New("invalid json document")

// FromBytes validates data and returns it as a Node.
func FromBytes(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: %.40q", ErrInvalidJSON, data)
	}
	return Node(data), nil
}

// Store implements otree.Store for raw JSON nodes. The zero value is ready
// to use.
type Store struct{}

// New returns a JSON store.
func New() Store {
	return Store{}
}

// Get returns the fragment reachable at path, or the empty Node if any
// segment is absent.
func (s Store) Get(node Node, path otree.Path) Node {
	if path.IsEmpty() {
		return node
	}
	result := gjson.Get(string(node), gjsonPath(path.Keys()...))
	if !result.Exists() {
		return ""
	}
	return Node(result.Raw)
}

// Child returns the fragment of the single immediate child key, or the empty
// Node.
func (s Store) Child(node Node, key string) Node {
	result := gjson.Get(string(node), gjsonPath(key))
	if !result.Exists() {
		return ""
	}
	return Node(result.Raw)
}

// Set writes value at path, creating intermediate objects as needed, and
// returns the updated document. An empty path replaces the document with
// value. A failed write (which sjson only reports for malformed input)
// leaves the document unchanged.
func (s Store) Set(node Node, path otree.Path, value Node) Node {
	if value == "" {
		value = "null"
	}
	if path.IsEmpty() {
		return value
	}
	out, err := sjson.SetRaw(string(node), gjsonPath(path.Keys()...), string(value))
	if err != nil {
		return node
	}
	return Node(out)
}

// Equal reports structural equality of two fragments. Two empty nodes are
// equal; the comparison otherwise tries a cheap canonical-form match before
// falling back to a full decode, so formatting differences never matter.
func (s Store) Equal(a, b Node) bool {
	if s.IsEmpty(a) || s.IsEmpty(b) {
		return s.IsEmpty(a) == s.IsEmpty(b)
	}
	if string(pretty.Ugly([]byte(a))) == string(pretty.Ugly([]byte(b))) {
		return true
	}

	var av, bv any
	if err := json.Unmarshal([]byte(a), &av); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(b), &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

// IsEmpty reports whether node represents no value.
func (s Store) IsEmpty(node Node) bool {
	trimmed := strings.TrimSpace(string(node))
	return trimmed == "" || trimmed == "null"
}

// Clone returns node itself; nodes are immutable values.
func (s Store) Clone(node Node) Node {
	return node
}

// gjsonPath joins literal keys into a gjson/sjson path, escaping the
// characters those paths treat specially.
func gjsonPath(keys ...string) string {
	escaped := make([]string, len(keys))
	for i, key := range keys {
		escaped[i] = escapeKey(key)
	}
	return strings.Join(escaped, ".")
}

func escapeKey(key string) string {
	if !strings.ContainsAny(key, `\.*?|#@:`) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) * 2)
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '\\', '.', '*', '?', '|', '#', '@', ':':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

var _ otree.Store[Node] = Store{}
