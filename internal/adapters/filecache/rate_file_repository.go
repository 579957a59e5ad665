// Package filecache persists the currency rate table as one flat JSON file.
package filecache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/SscSPs/smart_converter/internal/apperrors"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_converter/internal/core/ports/repositories"
	"github.com/bytedance/sonic"
	"github.com/google/renameio/v2"
)

// RateFileRepository stores a domain.RateTable at path as {"<code>": <rate>}.
// The file's modification time is the snapshot's FetchedAt.
type RateFileRepository struct {
	path string
}

// NewRateFileRepository creates a repository backed by the file at path.
func NewRateFileRepository(path string) portsrepo.RateCacheRepositoryFacade {
	return &RateFileRepository{path: path}
}

// LoadRates reads the cached table. A missing file is reported as
// apperrors.ErrNotFound.
func (r *RateFileRepository) LoadRates(ctx context.Context) (*domain.RateSnapshot, error) {
	info, err := os.Stat(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: rate cache %s", apperrors.ErrNotFound, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat rate cache: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	var rates domain.RateTable
	if err := sonic.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to decode rate cache %s: %w", r.path, err)
	}
	if rates == nil {
		rates = domain.RateTable{}
	}

	return &domain.RateSnapshot{Rates: rates, FetchedAt: info.ModTime()}, nil
}

// SaveRates replaces the file with rates. The table is written to a temporary
// file and renamed over the old one, so readers never see a partial table.
func (r *RateFileRepository) SaveRates(ctx context.Context, rates domain.RateTable) (*domain.RateSnapshot, error) {
	data, err := sonic.ConfigStd.MarshalIndent(rates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode rate table: %w", err)
	}

	if err := renameio.WriteFile(r.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write rate cache: %w", err)
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat rate cache: %w", err)
	}

	saved := make(domain.RateTable, len(rates))
	for code, rate := range rates {
		saved[code] = rate
	}
	return &domain.RateSnapshot{Rates: saved, FetchedAt: info.ModTime()}, nil
}
