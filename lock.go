package otree

import "sync"

// LockPolicy produces the lockers guarding a Tree and each of its Signals.
// The notification algorithm is identical under any policy; the policy only
// decides whether locking has effect.
type LockPolicy func() sync.Locker

// MutexPolicy returns a real mutual-exclusion locker. This is the default.
func MutexPolicy() sync.Locker {
	return &sync.Mutex{}
}

// NoLockPolicy returns a no-op locker for single-threaded use.
func NoLockPolicy() sync.Locker {
	return noLock{}
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}
