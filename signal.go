package otree

import (
	"sync"
	"weak"
)

// Slot is a subscriber callback invoked with the value before and after a
// change at the subscribed path.
type Slot[N any] func(oldValue, newValue N)

// Signal is the multicast callback holder for one subscription point. It is
// created and owned by the tree's subscription registry and handed out by
// Tree.ModificationSignal.
//
// Storage adapts to the subscriber count: a signal starts with no storage,
// allocates single-slot storage on the first Connect, and migrates every slot
// into list storage when a second Connect arrives while the single slot is
// occupied. List storage is never demoted back. Invocation order across the
// migration is the connection order.
//
// Connect and Disconnect lock the signal's own lock, which is independent of
// the tree-wide lock. Slots are invoked under the same lock; see the package
// documentation for the reentrancy hazard this implies.
type Signal[N any] struct {
	mu     sync.Locker
	single *slotEntry[N]
	multi  []*slotEntry[N]
	many   bool
	nextID uint64
}

type slotEntry[N any] struct {
	id uint64
	fn Slot[N]
}

func newSignal[N any](policy LockPolicy) *Signal[N] {
	return &Signal[N]{mu: policy()}
}

// Connect registers slot for future invocations and returns its Connection.
// A nil slot yields an inert connection (Connected reports false) and leaves
// the signal untouched; this is a signaled condition, not an error.
func (s *Signal[N]) Connect(slot Slot[N]) *Connection[N] {
	if slot == nil {
		return &Connection[N]{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry := &slotEntry[N]{id: s.nextID, fn: slot}

	switch {
	case !s.many && s.single == nil:
		s.single = entry
	case !s.many:
		// Second subscriber while single storage is occupied: promote
		// the existing slot into list storage ahead of the new one.
		s.multi = []*slotEntry[N]{s.single, entry}
		s.single = nil
		s.many = true
	default:
		s.multi = append(s.multi, entry)
	}

	conn := &Connection[N]{sig: weak.Make(s)}
	conn.id.Store(entry.id)
	return conn
}

// IsConnected reports whether at least one slot remains attached.
func (s *Signal[N]) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.single != nil || len(s.multi) > 0
}

// disconnect removes the slot with the given identity if still present.
// Unknown identities are ignored, which makes Connection.Disconnect
// idempotent.
func (s *Signal[N]) disconnect(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.single != nil && s.single.id == id {
		s.single = nil
		return
	}
	for i, entry := range s.multi {
		if entry.id == id {
			s.multi = append(s.multi[:i], s.multi[i+1:]...)
			return
		}
	}
}

// invoke calls every connected slot in connection order, passing the same
// (oldValue, newValue) pair to each. Invoking a signal with no slots is a
// no-op.
func (s *Signal[N]) invoke(oldValue, newValue N) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.single != nil {
		s.single.fn(oldValue, newValue)
		return
	}
	for _, entry := range s.multi {
		entry.fn(oldValue, newValue)
	}
}
