package quotes

// REST client for the Yahoo Finance chart API. Quotes are fetched fresh on
// every call: no caching, no batching, no retry. A bounded timeout keeps a
// slow provider from hanging a request forever.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"

	"papertrader/src/trading"
)

const (
	defaultYahooBaseURL = "https://query1.finance.yahoo.com"
	defaultQuoteTimeout = 10 * time.Second
	chartPathPrefix     = "/v8/finance/chart/"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooClient fetches the latest closing price for a ticker. It implements
// trading.QuoteSource.
type YahooClient struct {
	http *resty.Client
}

func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultYahooBaseURL
		logger.Warnf("No quote base URL provided, using default: %s", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultQuoteTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &YahooClient{http: httpClient}
}

// LatestPrice returns the most recent closing price for ticker. Unknown
// tickers come back wrapping trading.ErrSymbolNotFound; every other failure
// (network, timeout, parse, provider error) is a plain error.
func (c *YahooClient) LatestPrice(ctx context.Context, ticker string) (float64, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))

	logger.WithField("ticker", symbol).Debug("Fetching latest quote")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("interval", "1d").
		SetQueryParam("range", "1d").
		Get(chartPathPrefix + url.PathEscape(symbol))
	if err != nil {
		return 0, fmt.Errorf("quote request for %s failed: %w", symbol, err)
	}

	var out chartResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return 0, fmt.Errorf("quote response for %s unmarshal failed: %w. raw=%s", symbol, err, resp.Body())
	}

	// Yahoo reports unknown symbols as HTTP 404 with a chart.error payload.
	if out.Chart.Error != nil {
		if resp.StatusCode() == http.StatusNotFound {
			return 0, fmt.Errorf("%s: %w", symbol, trading.ErrSymbolNotFound)
		}
		return 0, fmt.Errorf("quote provider error for %s: %s: %s",
			symbol, out.Chart.Error.Code, out.Chart.Error.Description)
	}

	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("quote provider HTTP %d for %s: %s", resp.StatusCode(), symbol, resp.Body())
	}

	if len(out.Chart.Result) == 0 {
		return 0, fmt.Errorf("%s: %w", symbol, trading.ErrSymbolNotFound)
	}

	result := out.Chart.Result[0]

	// Last non-null close of the window; the series can hold nulls for
	// not-yet-closed intervals.
	for _, q := range result.Indicators.Quote {
		for i := len(q.Close) - 1; i >= 0; i-- {
			if q.Close[i] != nil {
				return *q.Close[i], nil
			}
		}
	}

	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}

	return 0, fmt.Errorf("quote provider returned no closing price for %s", symbol)
}
