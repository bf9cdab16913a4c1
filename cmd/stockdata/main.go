// Command stockdata downloads daily price history and ticker metadata from
// Yahoo Finance.
//
//	stockdata history [-format csv|json|parquet] <ticker> <days> <output_path>
//	stockdata info <ticker>
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"stock-data/internal/cli"
	"stock-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("error"))
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer a.DP.Close()

	cfg := a.Config
	slog.SetDefault(slogx.WithRunID(slogx.NewDefault(cfg.LogLevel)))
	slog.Info("using data provider", "provider", a.DP.GetName())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cdr := cli.NewCommander(flag.CommandLine, cli.Deps{
		Provider:   a.DP,
		Metrics:    a.Metrics,
		SaveFormat: cfg.SaveFormat,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})
	status := cdr.Execute(ctx)

	if err := a.Metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		slog.Warn("could not write metrics textfile", "path", cfg.MetricsTextfile, "error", err)
	}
	return exitCode(status)
}

// exitCode maps a subcommand status to the process exit code. Usage errors
// (no subcommand, bad flags) exit 1 like every other failure.
func exitCode(status subcommands.ExitStatus) int {
	if status == subcommands.ExitUsageError {
		return int(subcommands.ExitFailure)
	}
	return int(status)
}
