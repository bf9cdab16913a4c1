package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"stock-data/internal/model"
)

// Profile fetches the full descriptive metadata (quoteSummary price module).
// This endpoint is the restricted one: it needs a crumb and fails more often
// than ShortName.
func (c *Client) Profile(ctx context.Context, symbol string) (*model.Profile, error) {
	params := map[string]string{"modules": "price"}
	if crumb := c.ensureCrumb(ctx); crumb != "" {
		params["crumb"] = crumb
	}
	var out quoteSummaryResponse
	if err := c.get(ctx, "quoteSummary", "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &out); err != nil {
		return nil, err
	}
	if len(out.QuoteSummary.Result) == 0 || out.QuoteSummary.Result[0].Price == nil {
		return nil, &APIError{
			Endpoint:    "quoteSummary",
			StatusCode:  200,
			Code:        "Not Found",
			Description: fmt.Sprintf("no price data for %s", symbol),
		}
	}
	p := out.QuoteSummary.Result[0].Price
	return &model.Profile{
		Symbol:       p.Symbol,
		LongName:     p.LongName,
		ShortName:    p.ShortName,
		Exchange:     p.Exchange,
		ExchangeName: p.ExchangeName,
	}, nil
}

// ShortName runs the lightweight v7 quote lookup and returns the symbol's
// short display name. An unknown symbol yields ("", nil).
func (c *Client) ShortName(ctx context.Context, symbol string) (string, error) {
	params := map[string]string{
		"symbols": symbol,
		"fields":  "shortName",
	}
	if crumb := c.ensureCrumb(ctx); crumb != "" {
		params["crumb"] = crumb
	}
	var out quoteResponse
	if err := c.get(ctx, "quote", "/v7/finance/quote", params, &out); err != nil {
		return "", err
	}
	for _, q := range out.QuoteResponse.Result {
		if strings.EqualFold(q.Symbol, symbol) {
			return q.ShortName, nil
		}
	}
	if len(out.QuoteResponse.Result) > 0 {
		return out.QuoteResponse.Result[0].ShortName, nil
	}
	return "", nil
}
