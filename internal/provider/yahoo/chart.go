package yahoo

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"time"

	"stock-data/internal/model"
)

// DailyBars fetches daily bars for symbol in [from, to]. A symbol Yahoo does
// not know yields (nil, nil) so callers can treat it as an empty history.
func (c *Client) DailyBars(ctx context.Context, symbol string, from, to time.Time) ([]model.Bar, error) {
	params := map[string]string{
		"period1":              strconv.FormatInt(from.Unix(), 10),
		"period2":              strconv.FormatInt(to.Unix(), 10),
		"interval":             "1d",
		"events":               "div,split",
		"includeAdjustedClose": "true",
	}
	var out chartResponse
	if err := c.get(ctx, "chart", "/v8/finance/chart/"+url.PathEscape(symbol), params, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, nil
		}
		return nil, err
	}
	if len(out.Chart.Result) == 0 {
		return nil, nil
	}
	return out.Chart.Result[0].bars(), nil
}

// bars flattens the columnar chart payload into rows, skipping null rows
// (holidays, halts) and attaching dividends and splits to their trading day.
func (r chartResult) bars() []model.Bar {
	if len(r.Indicators.Quote) == 0 || len(r.Timestamp) == 0 {
		return nil
	}
	q := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}
	loc := time.FixedZone(r.Meta.Timezone, r.Meta.GMTOffset)

	dividends := make(map[string]float64, len(r.Events.Dividends))
	for _, d := range r.Events.Dividends {
		dividends[dateIn(d.Date, loc)] += d.Amount
	}
	splits := make(map[string]float64, len(r.Events.Splits))
	for _, s := range r.Events.Splits {
		if s.Denominator != 0 {
			splits[dateIn(s.Date, loc)] = s.Numerator / s.Denominator
		}
	}

	bars := make([]model.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		o, h, l, cl := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if o == nil && h == nil && l == nil && cl == nil {
			continue
		}
		date := dateIn(ts, loc)
		b := model.Bar{
			Date:        date,
			Timestamp:   ts,
			Open:        deref(o),
			High:        deref(h),
			Low:         deref(l),
			Close:       deref(cl),
			Volume:      int64(deref(at(q.Volume, i))),
			Dividends:   dividends[date],
			StockSplits: splits[date],
		}
		b.AdjClose = b.Close
		if a := at(adj, i); a != nil {
			b.AdjClose = *a
		}
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return mergeSameDay(bars)
}

// mergeSameDay folds rows sharing a trading date into one. Yahoo sometimes
// appends today's live bar as a separate row after the session-open row.
// bars must be sorted ascending.
func mergeSameDay(bars []model.Bar) []model.Bar {
	out := bars[:0]
	for _, b := range bars {
		n := len(out)
		if n == 0 || out[n-1].Date != b.Date {
			out = append(out, b)
			continue
		}
		day := &out[n-1]
		day.High = max(day.High, b.High)
		day.Low = min(day.Low, b.Low)
		day.Close = b.Close
		day.AdjClose = b.AdjClose
		day.Volume += b.Volume
	}
	return out
}

func dateIn(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format("2006-01-02")
}

func at(s []*float64, i int) *float64 {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
