package main

import (
	"stock-data/internal/app"
	"stock-data/internal/metrics"
	"stock-data/internal/provider"
)

// App holds application dependencies built by Wire.
type App struct {
	Config  *app.Config
	DP      provider.DataProvider
	Metrics *metrics.Recorder
}
