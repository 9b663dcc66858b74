// Package rates fetches USD-relative exchange rates from the
// fawazahmed0/currency-api CDN endpoint, the same source the original
// plugin used.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultURL is the published USD rate map.
const DefaultURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/usd.json"

// Client fetches the full USD rate map in one request.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a rate client. An empty url falls back to DefaultURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchUSDRates retrieves the currency-code -> rate-relative-to-USD map.
// Codes are normalized to uppercase.
func (c *Client) FetchUSDRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate source returned status %d", resp.StatusCode)
	}

	var payload struct {
		USD map[string]decimal.Decimal `json:"usd"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid exchange rate response: %w", err)
	}
	if payload.USD == nil {
		return nil, fmt.Errorf("invalid exchange rate response: missing usd map")
	}

	normalized := make(map[string]decimal.Decimal, len(payload.USD))
	for code, rate := range payload.USD {
		normalized[strings.ToUpper(code)] = rate
	}
	return normalized, nil
}
