package provider

import (
	"context"
	"log/slog"
	"time"

	"stock-data/internal/model"
	"stock-data/internal/provider/yahoo"
)

// YahooProvider is a DataProvider implementation backed by the Yahoo Finance query API.
type YahooProvider struct {
	client  *yahoo.Client
	symbols SymbolMap
}

// NewYahooProvider creates a new Yahoo-backed DataProvider.
func NewYahooProvider(opts yahoo.Options, symbols SymbolMap) *YahooProvider {
	return &YahooProvider{
		client:  yahoo.NewClient(opts),
		symbols: symbols,
	}
}

// GetName returns provider name
func (p *YahooProvider) GetName() string {
	return "Yahoo"
}

func (p *YahooProvider) DailyBars(ctx context.Context, ticker string, from, to time.Time) ([]model.Bar, error) {
	symbol := p.symbols.Symbol(ticker)
	slog.Debug("request daily bars", "ticker", ticker, "symbol", symbol,
		"from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"))
	return p.client.DailyBars(ctx, symbol, from, to)
}

func (p *YahooProvider) Profile(ctx context.Context, ticker string) (*model.Profile, error) {
	symbol := p.symbols.Symbol(ticker)
	slog.Debug("request profile", "ticker", ticker, "symbol", symbol)
	return p.client.Profile(ctx, symbol)
}

func (p *YahooProvider) ShortName(ctx context.Context, ticker string) (string, error) {
	symbol := p.symbols.Symbol(ticker)
	slog.Debug("request short name", "ticker", ticker, "symbol", symbol)
	return p.client.ShortName(ctx, symbol)
}

// Close closes connections
func (p *YahooProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
