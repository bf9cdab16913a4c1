package app

import (
	"fmt"
	"strings"

	"stock-data/internal/metrics"
	"stock-data/internal/provider"
	"stock-data/internal/provider/yahoo"
)

// CreateProvider creates DataProvider from config (currently Yahoo only)
func CreateProvider(cfg *Config, rec *metrics.Recorder) (provider.DataProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DataProvider)) {
	case "yahoo", "":
		return createYahooProvider(cfg, rec), nil
	default:
		return nil, fmt.Errorf("unsupported data provider: %s. Options: yahoo", cfg.DataProvider)
	}
}

func createYahooProvider(cfg *Config, rec *metrics.Recorder) *provider.YahooProvider {
	opts := yahoo.Options{
		BaseURL:   cfg.Yahoo.BaseURL,
		CookieURL: cfg.Yahoo.CookieURL,
		UserAgent: cfg.Yahoo.UserAgent,
		Timeout:   cfg.Yahoo.Timeout(),
	}
	if rec != nil {
		opts.Observe = rec.ObserveRequest
	}
	return provider.NewYahooProvider(opts, provider.NewSymbolMap(cfg.Yahoo.SymbolMap, cfg.Yahoo.TokyoSuffix))
}
