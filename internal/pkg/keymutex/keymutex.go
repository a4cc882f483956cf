// Package keymutex provides per-key mutual exclusion. It is used to serialize
// mutations on a single order so two concurrent status transitions for the
// same id cannot interleave within the process. Mutations on different keys
// proceed in parallel.
package keymutex

import "sync"

// KeyedMutex hands out one lock per key. Locks are reference counted and
// released back when no goroutine holds or waits on them, so the map does not
// grow with the total number of keys ever seen.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*entry)}
}

// Lock acquires the lock for key, blocking while another goroutine holds it.
func (km *KeyedMutex) Lock(key int64) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key. It must be called exactly once per Lock.
func (km *KeyedMutex) Unlock(key int64) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		panic("keymutex: unlock of unlocked key")
	}
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	e.mu.Unlock()
}
