package models

import "sync"

// History is the ordered, append-only scan event store. All appends are
// serialized by the mutex and every read hands out a consistent copy, so
// the analytics engine never observes a partial write.
type History struct {
	Mutex  sync.RWMutex
	Events []ScanEvent
}

func NewHistory() *History {
	return &History{
		Events: make([]ScanEvent, 0),
	}
}

func (h *History) Append(ev ScanEvent) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()
	h.Events = append(h.Events, ev)
}

// Snapshot returns a copy of the full event sequence in append order.
func (h *History) Snapshot() []ScanEvent {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	copied := make([]ScanEvent, len(h.Events))
	copy(copied, h.Events)
	return copied
}

// Put replaces the whole sequence. Used by the restore path only.
func (h *History) Put(events []ScanEvent) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()
	h.Events = events
}

// Clear removes every event and reports how many were dropped.
func (h *History) Clear() int {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()
	n := len(h.Events)
	h.Events = make([]ScanEvent, 0)
	return n
}

// RemoveWhere deletes all events matching the predicate, preserving the
// order of the survivors, and reports how many were removed.
func (h *History) RemoveWhere(pred func(ScanEvent) bool) int {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	kept := h.Events[:0]
	removed := 0
	for _, ev := range h.Events {
		if pred(ev) {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	h.Events = kept
	return removed
}

func (h *History) Len() int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return len(h.Events)
}
