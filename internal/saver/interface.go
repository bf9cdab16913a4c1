package saver

import (
	"fmt"
	"path/filepath"
	"strings"

	"stock-data/internal/model"
)

// Saver writes a full bar history to one file.
// The history fetcher depends only on this interface; main picks the implementation.
type Saver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// Formats lists the supported output formats.
var Formats = []string{"csv", "json", "parquet"}

// NewSaver creates implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

// ForPath picks a Saver for path. An explicit format wins; otherwise the
// file extension decides, and anything unrecognised is written as CSV.
func ForPath(path, format string) (Saver, error) {
	if strings.TrimSpace(format) != "" {
		s := NewSaver(format)
		if s == nil {
			return nil, fmt.Errorf("unsupported format %q (use: %s)", format, strings.Join(Formats, ", "))
		}
		return s, nil
	}
	if s := NewSaver(strings.TrimPrefix(filepath.Ext(path), ".")); s != nil {
		return s, nil
	}
	return CSVSaver{}, nil
}
