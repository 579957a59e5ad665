package domain

import "time"

// DefaultHistoryCapacity is the number of conversions kept per session.
const DefaultHistoryCapacity = 10

// ConversionKind tells which converter produced a history entry.
type ConversionKind string

const (
	UnitConversionKind     ConversionKind = "unit"
	CurrencyConversionKind ConversionKind = "currency"
)

// HistoryEntry is one completed conversion as it was displayed.
type HistoryEntry struct {
	Kind       ConversionKind `json:"kind"`
	Text       string         `json:"text"`
	RecordedAt time.Time      `json:"recordedAt"`
}

// History is a fixed-capacity list of entries, most recent first. Adding to
// a full history silently drops the oldest entry. It is not safe for
// concurrent use.
type History struct {
	capacity int
	entries  []HistoryEntry
}

// NewHistory returns an empty history. A non-positive capacity falls back to
// DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity, entries: make([]HistoryEntry, 0, capacity)}
}

// Add prepends e, evicting the oldest entry when over capacity.
func (h *History) Add(e HistoryEntry) {
	if len(h.entries) < h.capacity {
		h.entries = append(h.entries, HistoryEntry{})
	}
	copy(h.entries[1:], h.entries[:len(h.entries)-1])
	h.entries[0] = e
}

// Entries returns a copy of the entries, most recent first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries held.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of entries held.
func (h *History) Capacity() int { return h.capacity }

// Clear drops every entry.
func (h *History) Clear() { h.entries = h.entries[:0] }
