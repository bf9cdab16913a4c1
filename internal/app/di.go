package app

import (
	"stock-data/internal/metrics"
	"stock-data/internal/provider"
)

// ProvideConfig loads config from the environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideMetrics creates the per-run metrics recorder (for Wire).
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideDataProvider creates the configured DataProvider (for Wire).
// Caller must call dp.Close() when shutting down.
func ProvideDataProvider(cfg *Config, rec *metrics.Recorder) (provider.DataProvider, error) {
	return CreateProvider(cfg, rec)
}
