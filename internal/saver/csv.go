package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"stock-data/internal/model"
)

// Header is the CSV header row; the trading date is always the first column.
var Header = []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume", "Dividends", "Stock Splits"}

// CSVSaver writes bars as CSV, one row per trading day.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			b.Date,
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.AdjClose),
			strconv.FormatInt(b.Volume, 10),
			floatStr(b.Dividends),
			floatStr(b.StockSplits),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
