package dto

import "github.com/SscSPs/smart_converter/internal/core/domain"

// HistoryResponse lists a session's conversions, most recent first.
type HistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
}

// ToHistoryResponse wraps history entries, never returning a nil list.
func ToHistoryResponse(entries []domain.HistoryEntry) HistoryResponse {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return HistoryResponse{Entries: entries}
}
