package services

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/core/domain"
)

// HistoryReaderSvc defines read operations on session history
type HistoryReaderSvc interface {
	// ListHistory returns the session's entries, most recent first.
	ListHistory(ctx context.Context, sessionID string) []domain.HistoryEntry
}

// HistoryWriterSvc defines write operations on session history
type HistoryWriterSvc interface {
	// RecordConversion prepends an entry to the session's history.
	RecordConversion(ctx context.Context, sessionID string, kind domain.ConversionKind, text string)

	// ClearHistory empties the session's history.
	ClearHistory(ctx context.Context, sessionID string)
}

// SessionLifecycleSvc ends sessions and their history. Idle sessions expire
// on their own.
type SessionLifecycleSvc interface {
	// EndSession drops the session and its history.
	EndSession(ctx context.Context, sessionID string)
}

// HistorySvcFacade combines all history-related service interfaces
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
	SessionLifecycleSvc
}
