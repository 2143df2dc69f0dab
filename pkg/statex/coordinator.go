package statex

// Coordinator receives every field the moment it is marked dirty and
// decides when to flush it. It is the extension seam for batched, async,
// or instrumented flush policies.
type Coordinator interface {
	// AddDirty hands over a field that was just marked dirty. The field
	// may already have been handed over during the same propagation; the
	// coordinator must tolerate repeats.
	AddDirty(f *Field)
}

// SyncCoordinator is the default policy: flush immediately on the call
// stack that produced the mutation. No batching, no deduplication.
type SyncCoordinator struct{}

// AddDirty implements Coordinator.
func (SyncCoordinator) AddDirty(f *Field) {
	f.Flush()
}

// defaultCoordinator is consulted by fields that were not built with an
// explicit coordinator.
var defaultCoordinator Coordinator = SyncCoordinator{}

// SetCoordinator replaces the package-level coordinator. Passing nil
// restores the synchronous default. Fields created with WithCoordinator
// are unaffected.
func SetCoordinator(c Coordinator) {
	if c == nil {
		defaultCoordinator = SyncCoordinator{}
		return
	}
	defaultCoordinator = c
}
