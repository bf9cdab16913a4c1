package model

// Profile is the descriptive metadata the provider holds for one symbol.
type Profile struct {
	Symbol       string
	LongName     string
	ShortName    string
	Exchange     string // short exchange code, e.g. NMS, JPX
	ExchangeName string
}

// TickerMetadata is the record printed by the info command.
type TickerMetadata struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market string `json:"market"`
}
