package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"stock-data/internal/history"
	"stock-data/internal/saver"
)

type historyCmd struct {
	deps   Deps
	format string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "download daily price history for one ticker to a file" }
func (*historyCmd) Usage() string {
	return `history [-format csv|json|parquet] <ticker> <days> <output_path>:
  Download the last <days> calendar days of daily bars for <ticker> and write
  them to <output_path>, creating parent directories.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", c.deps.SaveFormat,
		"output format ("+strings.Join(saver.Formats, ", ")+"); empty picks by file extension")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 3 {
		fmt.Fprintln(c.deps.Stdout, "Usage: stockdata history <ticker> <days> <output_path>")
		return c.done(resultUsage, subcommands.ExitFailure)
	}
	ticker, output := args[0], args[2]
	days, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(c.deps.Stderr, "Error: <days> must be an integer.")
		return c.done(resultUsage, subcommands.ExitFailure)
	}

	res, err := history.NewFetcher(c.deps.Provider).Fetch(ctx, history.Request{
		Ticker:     ticker,
		Days:       days,
		OutputPath: output,
		Format:     c.format,
	})
	switch {
	case errors.Is(err, history.ErrNoData):
		fmt.Fprintf(c.deps.Stdout, "No data found for %s\n", ticker)
		return c.done(resultNoData, subcommands.ExitFailure)
	case errors.Is(err, history.ErrInvalidRequest):
		fmt.Fprintf(c.deps.Stderr, "Error: %v\n", err)
		return c.done(resultUsage, subcommands.ExitFailure)
	case err != nil:
		slog.Debug("history download failed", "ticker", ticker, "error", err)
		fmt.Fprintf(c.deps.Stderr, "Error: %v\n", err)
		return c.done(resultError, subcommands.ExitFailure)
	}

	c.deps.Metrics.SetRecords(res.Records)
	fmt.Fprintf(c.deps.Stdout, "Downloaded %d records for %s\n", res.Records, ticker)
	return c.done(resultOK, subcommands.ExitSuccess)
}

func (c *historyCmd) done(result string, status subcommands.ExitStatus) subcommands.ExitStatus {
	c.deps.Metrics.CommandDone(c.Name(), result)
	return status
}
