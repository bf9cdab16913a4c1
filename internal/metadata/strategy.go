package metadata

import (
	"context"

	"stock-data/internal/model"
)

// InfoSource is the provider capability the resolver needs.
type InfoSource interface {
	Profile(ctx context.Context, ticker string) (*model.Profile, error)
	ShortName(ctx context.Context, ticker string) (string, error)
}

// Strategy resolves metadata one way. A non-nil error means "try the next
// strategy"; a successful result is final even when its fields are empty.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, ticker string) (*model.TickerMetadata, error)
}

// FullProfile asks for the complete profile and takes the exchange as market.
type FullProfile struct {
	Source InfoSource
}

func (FullProfile) Name() string { return "full_profile" }

func (s FullProfile) Resolve(ctx context.Context, ticker string) (*model.TickerMetadata, error) {
	p, err := s.Source.Profile(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return &model.TickerMetadata{
		Code:   ticker,
		Name:   DisplayName(ticker, p.LongName, p.ShortName),
		Market: p.Exchange,
	}, nil
}

// ShortNameLookup only asks for the short display name. It never reports a
// market.
type ShortNameLookup struct {
	Source InfoSource
}

func (ShortNameLookup) Name() string { return "short_name" }

func (s ShortNameLookup) Resolve(ctx context.Context, ticker string) (*model.TickerMetadata, error) {
	short, err := s.Source.ShortName(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return &model.TickerMetadata{
		Code:   ticker,
		Name:   DisplayName(ticker, short),
		Market: "",
	}, nil
}

// DisplayName returns the first non-empty candidate, or code when all are empty.
func DisplayName(code string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return code
}
