// Package cli adapts the history and metadata operations to command-line
// subcommands: argument checks, output streams and exit codes.
package cli

import (
	"encoding/json"
	"flag"
	"io"
	"path/filepath"

	"github.com/google/subcommands"

	"stock-data/internal/metrics"
	"stock-data/internal/provider"
)

// Command results recorded in metrics.
const (
	resultOK     = "ok"
	resultNoData = "no_data"
	resultUsage  = "usage"
	resultError  = "error"
)

// Deps are the collaborators shared by every command.
type Deps struct {
	Provider   provider.DataProvider
	Metrics    *metrics.Recorder
	SaveFormat string // default for history -format
	Stdout     io.Writer
	Stderr     io.Writer
}

// NewCommander registers the history and info commands on a commander bound
// to fs. fs must be parsed before Execute.
func NewCommander(fs *flag.FlagSet, d Deps) *subcommands.Commander {
	cdr := subcommands.NewCommander(fs, filepath.Base(fs.Name()))
	cdr.Output = d.Stdout
	cdr.Error = d.Stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&historyCmd{deps: d}, "fetch")
	cdr.Register(&infoCmd{deps: d}, "fetch")
	return cdr
}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
