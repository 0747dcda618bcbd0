package otree

import (
	"sync/atomic"
	"weak"
)

// Connection is a cancellable handle to one subscribed slot. It references
// its Signal weakly, so Disconnect stays safe even after the registry has
// released the signal. Connections are handed out by pointer and must not be
// copied; the slot identity moves with the handle.
type Connection[N any] struct {
	sig weak.Pointer[Signal[N]]
	id  atomic.Uint64
}

// Disconnect removes this handle's slot from its signal. The first call
// permanently inerts the handle; further calls, calls on inert handles, and
// calls whose signal no longer exists are silent no-ops. Safe to call from
// any goroutine.
func (c *Connection[N]) Disconnect() {
	id := c.id.Swap(0)
	if id == 0 {
		return
	}
	if sig := c.sig.Value(); sig != nil {
		sig.disconnect(id)
	}
}

// Connected reports whether this handle still refers to an attached slot.
// It is false for connections returned from a nil-slot Connect and after
// Disconnect.
func (c *Connection[N]) Connected() bool {
	return c.id.Load() != 0
}
