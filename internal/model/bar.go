package model

// Bar represents one daily OHLCV row as returned by the provider.
// Shared by provider, history and saver (csv, json, parquet).
type Bar struct {
	Date        string  `json:"date" parquet:"date"` // exchange-local YYYY-MM-DD
	Timestamp   int64   `json:"t" parquet:"t"`       // Unix timestamp in seconds
	Open        float64 `json:"open" parquet:"open"`
	High        float64 `json:"high" parquet:"high"`
	Low         float64 `json:"low" parquet:"low"`
	Close       float64 `json:"close" parquet:"close"`
	AdjClose    float64 `json:"adj_close" parquet:"adj_close"`
	Volume      int64   `json:"volume" parquet:"volume"`
	Dividends   float64 `json:"dividends" parquet:"dividends"`
	StockSplits float64 `json:"stock_splits" parquet:"stock_splits"`
}
