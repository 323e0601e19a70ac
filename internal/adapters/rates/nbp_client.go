package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// nbpTable mirrors one element of the NBP table A response.
type nbpTable struct {
	Table         string    `json:"table"`
	No            string    `json:"no"`
	EffectiveDate string    `json:"effectiveDate"`
	Rates         []nbpRate `json:"rates"`
}

type nbpRate struct {
	Currency string          `json:"currency"`
	Code     string          `json:"code"`
	Mid      decimal.Decimal `json:"mid"`
}

// NBPClient reads the current table A of the National Bank of Poland.
type NBPClient struct {
	url        string
	httpClient *http.Client
}

// NewNBPClient creates a client for url. A nil httpClient gets a 10s timeout client.
func NewNBPClient(url string, httpClient *http.Client) *NBPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &NBPClient{url: url, httpClient: httpClient}
}

var _ portssvc.RateFeedClient = (*NBPClient)(nil)

func (c *NBPClient) FetchCurrentTable(ctx context.Context) ([]domain.FeedRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rate feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var tables []nbpTable
	if err := json.NewDecoder(resp.Body).Decode(&tables); err != nil {
		return nil, fmt.Errorf("failed to decode rate feed response: %w", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("rate feed returned no tables")
	}

	table := tables[0]
	out := make([]domain.FeedRate, 0, len(table.Rates))
	for _, r := range table.Rates {
		out = append(out, domain.FeedRate{
			Code:          r.Code,
			Currency:      r.Currency,
			Mid:           r.Mid,
			EffectiveDate: table.EffectiveDate,
		})
	}
	return out, nil
}
