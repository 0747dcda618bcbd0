package otree

import "sync"

// Tree is the user-facing observable tree aggregate. It owns the current
// root value and the subscription registry, and serializes every operation
// through one tree-wide lock.
//
// The root starts as the zero value of N, which the store must treat as
// empty.
type Tree[N any] struct {
	mu     sync.Locker
	store  Store[N]
	policy LockPolicy
	reg    registry[N]
	root   N
}

type treeConfig struct {
	policy LockPolicy
}

// Option configures a Tree.
type Option func(*treeConfig)

// WithLockPolicy sets the lock policy used for the tree-wide lock and for
// every signal the tree creates. The default is MutexPolicy.
func WithLockPolicy(policy LockPolicy) Option {
	return func(c *treeConfig) {
		c.policy = policy
	}
}

// New creates an observable tree over the given backing store.
func New[N any](store Store[N], opts ...Option) *Tree[N] {
	cfg := treeConfig{policy: MutexPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[N]{
		mu:     cfg.policy(),
		store:  store,
		policy: cfg.policy,
	}
}

// ModificationSignal returns the signal notified when the value at path
// changes, creating the subscription point if needed. The empty path has no
// signal; nil is returned.
//
// Subscription points persist for the life of the tree even after every
// subscriber disconnects: disconnecting frees the signal object during a
// later Set, but not the registry structure leading to it.
func (t *Tree[N]) ModificationSignal(path Path) *Signal[N] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reg.createSignal(path.keys, t.policy)
}

// Set replaces the whole tree with newRoot. Every subscription whose
// resolved value differs between the old and new root fires once with that
// (old, new) pair; a subscription above a changed descendant counts as
// changed. Notification runs strictly before the root assignment.
func (t *Tree[N]) Set(newRoot N) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reg.notifyTree(t.store, t.root, newRoot)
	t.root = newRoot
}

// SetPath writes value at path. Only a subscription at exactly path fires,
// and only if the value actually changed; subscriptions above or below the
// path are never notified by this protocol.
func (t *Tree[N]) SetPath(path Path, value N) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reg.notifyPath(t.store, path.keys, t.store.Get(t.root, path), value)
	t.root = t.store.Set(t.root, path, value)
}

// Get returns a copy of the current root value.
func (t *Tree[N]) Get() N {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Clone(t.root)
}

// GetPath returns a copy of the value at path, or the store's empty sentinel
// if the path is absent.
func (t *Tree[N]) GetPath(path Path) N {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Clone(t.store.Get(t.root, path))
}
