package service

import "sync"

// resourceLocks hands out one mutex per resource so that admission, update,
// and cancellation for the same resource are serialized in-process. Entries
// are created on first use and never removed; the map is bounded by the size
// of the resource catalog.
type resourceLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newResourceLocks() *resourceLocks {
	return &resourceLocks{locks: make(map[string]*sync.Mutex)}
}

func (r *resourceLocks) forResource(resourceID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[resourceID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[resourceID] = lock
	}
	return lock
}
