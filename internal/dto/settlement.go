package dto

import (
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementResponse defines the data returned after a box is emptied into its event.
type SettlementResponse struct {
	BoxID      string                     `json:"boxID"`
	EventID    string                     `json:"eventID"`
	Currency   string                     `json:"currency"`
	Collected  map[string]decimal.Decimal `json:"collected"`
	Converted  map[string]decimal.Decimal `json:"converted"`
	Total      decimal.Decimal            `json:"total"`
	NewBalance decimal.Decimal            `json:"newBalance"`
	RateSource string                     `json:"rateSource,omitempty"`
	SettledAt  time.Time                  `json:"settledAt"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		BoxID:      s.BoxID,
		EventID:    s.EventID,
		Currency:   string(s.Currency),
		Collected:  currencyKeyed(s.Collected),
		Converted:  currencyKeyed(s.Converted),
		Total:      s.Total,
		NewBalance: s.NewBalance,
		RateSource: s.RateSource,
		SettledAt:  s.SettledAt,
	}
}

func currencyKeyed(in map[domain.Currency]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for c, v := range in {
		out[string(c)] = v
	}
	return out
}
