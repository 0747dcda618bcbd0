package otree

import "strings"

// DefaultSep is the separator byte used by Parse and by String on paths that
// were not built from a delimited string.
const DefaultSep byte = '/'

// Path is an immutable ordered sequence of string keys locating a position
// inside a tree. The zero value is the empty path, which addresses the root.
type Path struct {
	keys []string
	sep  byte
}

// Parse builds a Path from a string delimited by DefaultSep.
func Parse(s string) Path {
	return ParseSep(s, DefaultSep)
}

// ParseSep builds a Path from a string delimited by sep. Empty segments
// produced by leading or doubled separators are dropped, and a trailing NUL
// byte in the final segment is stripped.
func ParseSep(s string, sep byte) Path {
	var keys []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if i > start {
				keys = append(keys, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		last := s[start:]
		if last[len(last)-1] == 0 {
			last = last[:len(last)-1]
		}
		if last != "" {
			keys = append(keys, last)
		}
	}
	return Path{keys: keys, sep: sep}
}

// NewPath builds a Path from an explicit key sequence. The keys are copied.
func NewPath(keys ...string) Path {
	if len(keys) == 0 {
		return Path{}
	}
	ks := make([]string, len(keys))
	copy(ks, keys)
	return Path{keys: ks}
}

// Append returns a new Path with key added after this path's keys.
func (p Path) Append(key string) Path {
	keys := make([]string, len(p.keys)+1)
	copy(keys, p.keys)
	keys[len(p.keys)] = key
	return Path{keys: keys, sep: p.sep}
}

// Join returns a new Path holding this path's keys followed by other's keys.
// The separator of the receiver is kept.
func (p Path) Join(other Path) Path {
	keys := make([]string, 0, len(p.keys)+len(other.keys))
	keys = append(keys, p.keys...)
	keys = append(keys, other.keys...)
	return Path{keys: keys, sep: p.sep}
}

// Keys returns a copy of the key sequence, front to back.
func (p Path) Keys() []string {
	if len(p.keys) == 0 {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// At returns the key at index i.
func (p Path) At(i int) string {
	return p.keys[i]
}

// Len returns the number of keys.
func (p Path) Len() int {
	return len(p.keys)
}

// IsEmpty reports whether the path has no keys.
func (p Path) IsEmpty() bool {
	return len(p.keys) == 0
}

// String returns the keys joined by the path's separator.
func (p Path) String() string {
	return p.StringSep(p.separator())
}

// StringSep returns the keys joined by sep.
func (p Path) StringSep(sep byte) string {
	return strings.Join(p.keys, string(sep))
}

// Equal reports whether both paths hold identical keys at identical
// positions. Separators do not participate: paths parsed with different
// separators but equal key sequences compare equal.
func (p Path) Equal(other Path) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, key := range p.keys {
		if other.keys[i] != key {
			return false
		}
	}
	return true
}

// separator returns the path's separator, falling back to DefaultSep for
// paths that were not parsed from a delimited string.
func (p Path) separator() byte {
	if p.sep == 0 {
		return DefaultSep
	}
	return p.sep
}
