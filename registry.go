package otree

// registry is a recursive trie mapping path segments to subscription points.
// Each level holds, per key, an optional signal for "subscription ends here"
// and an optional child registry for deeper paths. Nodes are created lazily
// on first subscription and never removed; only dead signal objects are
// released (see notifyTree).
type registry[N any] struct {
	nodes map[string]*registryNode[N]
}

type registryNode[N any] struct {
	sig   *Signal[N]
	child *registry[N]
}

// createSignal walks and extends the trie one segment at a time, returning
// the signal at the terminal node. Idempotent: an existing signal is reused.
// An empty key sequence yields nil.
func (r *registry[N]) createSignal(keys []string, policy LockPolicy) *Signal[N] {
	if len(keys) == 0 {
		return nil
	}
	if r.nodes == nil {
		r.nodes = make(map[string]*registryNode[N])
	}

	node := r.nodes[keys[0]]
	if node == nil {
		node = &registryNode[N]{}
		r.nodes[keys[0]] = node
	}

	if len(keys) > 1 {
		if node.child == nil {
			node.child = &registry[N]{}
		}
		return node.child.createSignal(keys[1:], policy)
	}
	if node.sig == nil {
		node.sig = newSignal[N](policy)
	}
	return node.sig
}

// lookup returns the signal registered at exactly the given key sequence, or
// nil if any segment is absent.
func (r *registry[N]) lookup(keys []string) *Signal[N] {
	if len(keys) == 0 {
		return nil
	}
	node := r.nodes[keys[0]]
	if node == nil {
		return nil
	}
	if len(keys) > 1 {
		if node.child == nil {
			return nil
		}
		return node.child.lookup(keys[1:])
	}
	return node.sig
}

// notifyTree implements the whole-tree replace protocol: it diffs oldNode
// against newNode at every key subscribed at this level, recursing into child
// registries, and fires the signals of changed keys. It reports whether any
// key at this level changed so the parent level can mark its own key changed
// without comparing subtree values again.
func (r *registry[N]) notifyTree(store Store[N], oldNode, newNode N) bool {
	if store.IsEmpty(oldNode) && store.IsEmpty(newNode) {
		return false
	}

	changed := false
	for key, node := range r.nodes {
		oldChild := store.Child(oldNode, key)
		newChild := store.Child(newNode, key)

		var keyChanged bool
		if node.child != nil && node.child.notifyTree(store, oldChild, newChild) {
			// A changed descendant makes this key changed; the
			// subtree comparison would be redundant.
			keyChanged = true
		} else {
			keyChanged = !store.Equal(oldChild, newChild)
		}
		changed = changed || keyChanged

		if node.sig != nil {
			if keyChanged {
				node.sig.invoke(oldChild, newChild)
			}
			if !node.sig.IsConnected() {
				// Release the dead signal. The trie node stays:
				// structural presence persists for the life of
				// the tree.
				node.sig = nil
			}
		}
	}
	return changed
}

// notifyPath implements the targeted set protocol: it fires the signal
// registered at exactly the given key sequence, if one exists and the value
// actually changed. Ancestor and descendant subscriptions are never touched.
func (r *registry[N]) notifyPath(store Store[N], keys []string, oldValue, newValue N) {
	sig := r.lookup(keys)
	if sig == nil {
		return
	}
	if !store.Equal(oldValue, newValue) {
		sig.invoke(oldValue, newValue)
	}
}
