package provider

import (
	"context"
	"time"

	"stock-data/internal/model"
)

// DataProvider is the abstraction used by the application when accessing a data source.
// Implementations own their transport and must release it in Close.
type DataProvider interface {
	GetName() string

	// DailyBars returns daily bars for ticker in [from, to], ascending by date.
	// An unknown ticker returns an empty slice and a nil error.
	DailyBars(ctx context.Context, ticker string, from, to time.Time) ([]model.Bar, error)

	// Profile returns the full descriptive metadata for ticker.
	Profile(ctx context.Context, ticker string) (*model.Profile, error)

	// ShortName is the lightweight name lookup; "" when the provider has none.
	ShortName(ctx context.Context, ticker string) (string, error)

	Close() error
}
