package rates

import (
	"context"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const FixedSourceName = "fixed"

// FixedRateSource serves a hardcoded PLN-based table. It never fails.
type FixedRateSource struct {
	rates map[domain.Currency]decimal.Decimal
}

func NewFixedRateSource() *FixedRateSource {
	return &FixedRateSource{
		rates: map[domain.Currency]decimal.Decimal{
			domain.EUR: decimal.RequireFromString("4.25"),
			domain.USD: decimal.RequireFromString("3.95"),
			domain.GBP: decimal.RequireFromString("4.95"),
		},
	}
}

var _ portssvc.RateSource = (*FixedRateSource)(nil)

func (s *FixedRateSource) Name() string { return FixedSourceName }

func (s *FixedRateSource) FetchRateTable(ctx context.Context) (domain.RateTable, error) {
	table := domain.NewRateTable(domain.BaseCurrency, FixedSourceName)
	for c, rate := range s.rates {
		table.Set(c, rate)
	}
	table.FetchedAt = time.Now()
	return table, nil
}
