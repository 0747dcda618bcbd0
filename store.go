package otree

// Store is the contract a backing tree representation must satisfy for the
// notification engine to work over it. N is the node type: an opaque value
// representing a whole tree, a subtree or a leaf.
//
// Implementations must never panic for missing paths; absence is expressed
// through the type's empty sentinel (the value for which IsEmpty reports
// true). A Store value is expected to be stateless and safe for concurrent
// use.
type Store[N any] interface {
	// Get returns the value reachable at path, or the empty sentinel if any
	// segment is absent.
	Get(node N, path Path) N

	// Child returns the value of the single immediate child key, or the
	// empty sentinel.
	Child(node N, key string) N

	// Set writes value at path, creating intermediate nodes as needed, and
	// returns the updated tree. Mutable node types may mutate node in place
	// and return it; immutable node types return a new value.
	Set(node N, path Path, value N) N

	// Equal reports structural equality of two values. It must be
	// reflexive.
	Equal(a, b N) bool

	// IsEmpty reports whether node represents "no value".
	IsEmpty(node N) bool

	// Clone returns a deep copy of node. Immutable node types may return
	// node itself.
	Clone(node N) N
}
