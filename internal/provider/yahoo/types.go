package yahoo

import (
	"fmt"

	"github.com/piquette/finance-go"
)

// errorBody is the {code, description} object Yahoo puts in every envelope.
type errorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// financeEnvelope is returned instead of the endpoint envelope on auth
// failures, e.g. {"finance":{"error":{"code":"Unauthorized","description":"Invalid Crumb"}}}.
type financeEnvelope struct {
	Error *errorBody `json:"error"`
}

// envelope is implemented by every response type so the shared request path
// can surface the API error regardless of the endpoint.
type envelope interface {
	apiError() *errorBody
}

// chartResponse is the /v8/finance/chart response.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *errorBody    `json:"error"`
	} `json:"chart"`
	Finance *financeEnvelope `json:"finance,omitempty"`
}

func (r *chartResponse) apiError() *errorBody {
	if r.Chart.Error != nil {
		return r.Chart.Error
	}
	if r.Finance != nil {
		return r.Finance.Error
	}
	return nil
}

type chartResult struct {
	Meta      chartMeta `json:"meta"`
	Timestamp []int64   `json:"timestamp"`
	Events    struct {
		Dividends map[string]dividendEvent `json:"dividends"`
		Splits    map[string]splitEvent    `json:"splits"`
	} `json:"events"`
	Indicators struct {
		Quote    []quoteColumns `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// quoteColumns holds one column per field; null entries mark rows without trades.
type quoteColumns struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type chartMeta struct {
	Symbol       string `json:"symbol"`
	Currency     string `json:"currency"`
	ExchangeName string `json:"exchangeName"`
	Timezone     string `json:"timezone"`
	GMTOffset    int    `json:"gmtoffset"` // seconds east of UTC
}

type dividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type splitEvent struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// quoteSummaryResponse is the /v10/finance/quoteSummary?modules=price response.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *priceModule `json:"price"`
		} `json:"result"`
		Error *errorBody `json:"error"`
	} `json:"quoteSummary"`
	Finance *financeEnvelope `json:"finance,omitempty"`
}

func (r *quoteSummaryResponse) apiError() *errorBody {
	if r.QuoteSummary.Error != nil {
		return r.QuoteSummary.Error
	}
	if r.Finance != nil {
		return r.Finance.Error
	}
	return nil
}

type priceModule struct {
	Symbol       string `json:"symbol"`
	LongName     string `json:"longName"`
	ShortName    string `json:"shortName"`
	Exchange     string `json:"exchange"`
	ExchangeName string `json:"exchangeName"`
}

// quoteResponse is the lightweight /v7/finance/quote response.
type quoteResponse struct {
	QuoteResponse struct {
		Result []finance.Quote `json:"result"`
		Error  *errorBody      `json:"error"`
	} `json:"quoteResponse"`
	Finance *financeEnvelope `json:"finance,omitempty"`
}

func (r *quoteResponse) apiError() *errorBody {
	if r.QuoteResponse.Error != nil {
		return r.QuoteResponse.Error
	}
	if r.Finance != nil {
		return r.Finance.Error
	}
	return nil
}

// APIError is returned for non-2xx responses and for error envelopes.
type APIError struct {
	Endpoint    string
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	switch {
	case e.Description != "" && e.Code != "":
		return fmt.Sprintf("yahoo %s: %s: %s", e.Endpoint, e.Code, e.Description)
	case e.Description != "":
		return fmt.Sprintf("yahoo %s: status %d: %s", e.Endpoint, e.StatusCode, e.Description)
	default:
		return fmt.Sprintf("yahoo %s: status %d", e.Endpoint, e.StatusCode)
	}
}

// NotFound reports whether Yahoo does not know the symbol.
func (e *APIError) NotFound() bool {
	return e.Code == "Not Found" || (e.Code == "" && e.StatusCode == 404)
}
