package models

import "sync"

const HistoryCapacity = 100

// HistoryBuffer is a bounded FIFO of profit snapshots. Once HistoryCapacity
// entries are held, each append evicts the oldest entry. The monitor worker
// is the only writer; readers take copies via Snapshot.
type HistoryBuffer struct {
	mu        sync.Mutex
	snapshots []ProfitSnapshot
}

func NewHistoryBuffer() *HistoryBuffer {
	return &HistoryBuffer{
		snapshots: make([]ProfitSnapshot, 0, HistoryCapacity),
	}
}

func (h *HistoryBuffer) Append(snapshot ProfitSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshots = append(h.snapshots, snapshot)
	if len(h.snapshots) > HistoryCapacity {
		h.snapshots = h.snapshots[1:]
	}
}

func (h *HistoryBuffer) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.snapshots)
}

// Snapshot returns a copy of the buffered entries, oldest first. The returned
// slice is safe to mutate.
func (h *HistoryBuffer) Snapshot() []ProfitSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]ProfitSnapshot, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}

func (h *HistoryBuffer) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshots = h.snapshots[:0]
}
