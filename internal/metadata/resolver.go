// Package metadata resolves a ticker's display name and market through an
// ordered list of strategies.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stock-data/internal/model"
)

// ResolveError is returned when every strategy failed. Its message is the
// first strategy's error; the rest are kept for errors.Is/As.
type ResolveError struct {
	Ticker string
	Errs   []error
}

func (e *ResolveError) Error() string {
	if len(e.Errs) == 0 {
		return fmt.Sprintf("no metadata for %s", e.Ticker)
	}
	return e.Errs[0].Error()
}

func (e *ResolveError) Unwrap() []error { return e.Errs }

// Resolver evaluates Strategies in order until one succeeds.
type Resolver struct {
	Strategies []Strategy
}

// NewResolver returns the default chain: full profile, then short-name lookup.
func NewResolver(src InfoSource) *Resolver {
	return &Resolver{Strategies: []Strategy{
		FullProfile{Source: src},
		ShortNameLookup{Source: src},
	}}
}

// Resolve returns metadata for ticker from the first strategy that succeeds.
func (r *Resolver) Resolve(ctx context.Context, ticker string) (*model.TickerMetadata, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, errors.New("no ticker provided")
	}
	var errs []error
	for _, s := range r.Strategies {
		md, err := s.Resolve(ctx, ticker)
		if err == nil {
			if len(errs) > 0 {
				slog.Info("metadata resolved by fallback", "ticker", ticker, "strategy", s.Name())
			}
			return md, nil
		}
		slog.Warn("metadata strategy failed", "ticker", ticker, "strategy", s.Name(), "error", err)
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, &ResolveError{Ticker: ticker, Errs: errs}
}
