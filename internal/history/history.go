// Package history downloads one ticker's daily price history to a file.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"stock-data/internal/model"
	"stock-data/internal/saver"
)

var (
	// ErrNoData is returned when the provider has no bars for the range.
	// Nothing is written in that case.
	ErrNoData = errors.New("no data")

	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid request")
)

var validate = validator.New()

// BarSource is the provider capability the fetcher needs.
type BarSource interface {
	DailyBars(ctx context.Context, ticker string, from, to time.Time) ([]model.Bar, error)
}

// Request describes one download.
type Request struct {
	Ticker     string `validate:"required"`
	Days       int    `validate:"gt=0"`
	OutputPath string `validate:"required"`
	Format     string `validate:"omitempty,oneof=csv json parquet"` // empty: by extension
}

// Result summarises a successful download.
type Result struct {
	Ticker  string
	Records int
	Path    string
	Format  string
	From    time.Time
	To      time.Time
}

// Fetcher downloads daily history from Source and persists it through a saver.
type Fetcher struct {
	Source BarSource
	Now    func() time.Time // defaults to time.Now
}

// NewFetcher returns a Fetcher reading from src.
func NewFetcher(src BarSource) *Fetcher {
	return &Fetcher{Source: src, Now: time.Now}
}

// Fetch requests the last req.Days calendar days of bars and writes them to
// req.OutputPath, creating parent directories. It returns ErrNoData when the
// provider has nothing for the range.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (*Result, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	s, err := saver.ForPath(req.OutputPath, req.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	to := now()
	from := to.AddDate(0, 0, -req.Days)

	bars, err := f.Source.DailyBars(ctx, req.Ticker, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", req.Ticker, err)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	dir := filepath.Dir(req.OutputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	if err := s.Save(bars, req.OutputPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", req.OutputPath, err)
	}
	slog.Info("saved history", "ticker", req.Ticker, "records", len(bars), "path", req.OutputPath, "format", s.Extension())

	return &Result{
		Ticker:  req.Ticker,
		Records: len(bars),
		Path:    req.OutputPath,
		Format:  s.Extension(),
		From:    from,
		To:      to,
	}, nil
}
