package transaction

import (
	"sync"
	"sync/atomic"
)

// sortedView memoizes the full ordering of the store. Writers bump the
// generation after their map write lands, so a snapshot is only served while
// its generation is current.
type sortedView struct {
	mu         sync.Mutex
	generation atomic.Uint64
	current    atomic.Pointer[viewSnapshot]
}

type viewSnapshot struct {
	generation uint64
	records    []*Transaction
}

func (v *sortedView) invalidate() {
	v.generation.Add(1)
	v.current.Store(nil)
}

// get returns the cached ordering, rebuilding it at most once per
// generation. The returned slice must not be modified.
func (v *sortedView) get(build func() []*Transaction) []*Transaction {
	if snap := v.current.Load(); snap != nil && snap.generation == v.generation.Load() {
		return snap.records
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring the lock
	generation := v.generation.Load()
	if snap := v.current.Load(); snap != nil && snap.generation == generation {
		return snap.records
	}

	records := build()
	v.current.Store(&viewSnapshot{generation: generation, records: records})

	return records
}

func (v *sortedView) cached() bool {
	snap := v.current.Load()
	return snap != nil && snap.generation == v.generation.Load()
}
