package cli

import (
	"context"
	"flag"
	"log/slog"
	"strings"

	"github.com/google/subcommands"

	"stock-data/internal/metadata"
)

// errorRecord is the only shape printed when metadata cannot be produced.
type errorRecord struct {
	Error string `json:"error"`
}

type infoCmd struct {
	deps Deps
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "print a ticker's name and market as JSON" }
func (*infoCmd) Usage() string {
	return `info <ticker>:
  Print {"code","name","market"} for <ticker>. Falls back to the short-name
  lookup (market "") when the full profile request fails.
`
}

func (*infoCmd) SetFlags(*flag.FlagSet) {}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
		writeJSON(c.deps.Stdout, errorRecord{Error: "No ticker provided"})
		return c.done(resultUsage, subcommands.ExitFailure)
	}
	ticker := strings.TrimSpace(args[0])

	md, err := metadata.NewResolver(c.deps.Provider).Resolve(ctx, ticker)
	if err != nil {
		slog.Debug("metadata lookup failed", "ticker", ticker, "error", err)
		writeJSON(c.deps.Stderr, errorRecord{Error: err.Error()})
		return c.done(resultError, subcommands.ExitFailure)
	}
	writeJSON(c.deps.Stdout, md)
	return c.done(resultOK, subcommands.ExitSuccess)
}

func (c *infoCmd) done(result string, status subcommands.ExitStatus) subcommands.ExitStatus {
	c.deps.Metrics.CommandDone(c.Name(), result)
	return status
}
