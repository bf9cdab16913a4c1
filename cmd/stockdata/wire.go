//go:build wireinject
// +build wireinject

package main

import (
	"stock-data/internal/app"

	"github.com/google/wire"
)

// InitializeApp builds App (Config + DataProvider + Metrics) via Wire.
// Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideMetrics,
		app.ProvideDataProvider,
		wire.Struct(new(App), "Config", "DP", "Metrics"),
	)
	return nil, nil
}
