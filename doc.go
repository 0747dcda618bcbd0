// Package otree provides an observable tree: a container holding a single
// hierarchical value that lets consumers subscribe, at an arbitrary path
// inside the tree, to be notified with (old value, new value) whenever the
// value reachable at that path changes.
//
// The backing tree representation is pluggable through the Store contract, so
// the notification engine works across different tree encodings. Two stores
// ship with the module: store/mapstore for nested map[string]any values and
// store/jsonstore for raw JSON documents.
//
// # Subscriptions
//
// A subscription point is obtained from the tree and attached to with Connect:
//
//	tree := otree.New[any](mapstore.New())
//	sig := tree.ModificationSignal(otree.Parse("config/usb/enabled"))
//	conn := sig.Connect(func(oldValue, newValue any) {
//		// react to the change
//	})
//	defer conn.Disconnect()
//
// # Notification protocols
//
// Two independent protocols drive notifications:
//
//   - Whole-tree replace (Tree.Set): the old and new roots are diffed
//     recursively against every subscription point. A subscription fires when
//     the value resolved at its path differs, and a changed descendant marks
//     every subscribed ancestor as changed without a separate comparison.
//   - Targeted set (Tree.SetPath): only a subscription at exactly the written
//     path fires. Ancestors and descendants are never notified by this
//     protocol.
//
// # Locking and reentrancy
//
// All Tree operations serialize through one tree-wide lock; each Signal has
// its own independent lock used by Connect, Disconnect and slot invocation.
// Slots run synchronously while both locks are held, so a slot that calls back
// into the same Tree, or into Connect/Disconnect on the Signal currently
// invoking it, deadlocks. Slots may safely touch other Signals and other
// trees. Single-threaded programs can opt out of locking entirely with
// WithLockPolicy(NoLockPolicy).
package otree
