package service

import "sync"

// resourceLocks serializes check-and-mutate sequences per resource.
// Operations on different resources never contend. Locks are never held
// across promotion or event publishing.
type resourceLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newResourceLocks() *resourceLocks {
	return &resourceLocks{m: make(map[string]*sync.Mutex)}
}

func (l *resourceLocks) lock(resourceID string) func() {
	l.mu.Lock()
	rl, ok := l.m[resourceID]
	if !ok {
		rl = &sync.Mutex{}
		l.m[resourceID] = rl
	}
	l.mu.Unlock()

	rl.Lock()
	return rl.Unlock
}
