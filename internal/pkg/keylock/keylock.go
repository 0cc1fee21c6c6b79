// Package keylock provides mutual exclusion keyed by an arbitrary string.
package keylock

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyLock serializes holders of the same key while letting different keys
// proceed in parallel. Entries are dropped once the last holder unlocks.
type KeyLock struct {
	m cmap.ConcurrentMap[string, *entry]
}

// New creates an empty KeyLock
func New() *KeyLock {
	return &KeyLock{m: cmap.New[*entry]()}
}

// Lock blocks until key is free and returns the matching unlock function.
func (l *KeyLock) Lock(key string) func() {
	e := l.m.Upsert(key, nil, func(exist bool, v *entry, _ *entry) *entry {
		if !exist {
			v = &entry{}
		}
		v.refs++
		return v
	})
	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			l.m.RemoveCb(key, func(_ string, v *entry, exists bool) bool {
				if !exists {
					return false
				}
				v.refs--
				return v.refs == 0
			})
		})
	}
}

// Len returns the number of keys currently held or waited on
func (l *KeyLock) Len() int {
	return l.m.Count()
}
