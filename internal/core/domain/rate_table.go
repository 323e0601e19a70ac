package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ConvertedAmountPrecision is the number of decimal places kept after a conversion.
const ConvertedAmountPrecision int32 = 2

// FeedRate is a single mid-market quote received from an external feed.
type FeedRate struct {
	Code          string          `json:"code"`
	Currency      string          `json:"currency"`
	Mid           decimal.Decimal `json:"mid"`
	EffectiveDate string          `json:"effectiveDate"`
}

// RateTable maps currencies to their rate against Base.
// Base is always present at rate 1.
type RateTable struct {
	Base          Currency                     `json:"base"`
	Rates         map[Currency]decimal.Decimal `json:"rates"`
	Source        string                       `json:"source"`
	EffectiveDate string                       `json:"effectiveDate,omitempty"`
	FetchedAt     time.Time                    `json:"fetchedAt"`
}

// NewRateTable returns a table holding only the identity entry for base.
func NewRateTable(base Currency, source string) RateTable {
	return RateTable{
		Base:      base,
		Rates:     map[Currency]decimal.Decimal{base: decimal.NewFromInt(1)},
		Source:    source,
		FetchedAt: time.Now(),
	}
}

// Set stores rate for c. The base currency keeps its identity rate.
func (t *RateTable) Set(c Currency, rate decimal.Decimal) {
	if c == t.Base {
		return
	}
	if t.Rates == nil {
		t.Rates = map[Currency]decimal.Decimal{t.Base: decimal.NewFromInt(1)}
	}
	t.Rates[c] = rate
}

// Rate returns the rate of c against the base currency.
func (t RateTable) Rate(c Currency) (decimal.Decimal, bool) {
	if c == t.Base {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.Rates[c]
	return rate, ok
}

// IsDegraded reports whether the table holds nothing beyond the identity entry.
func (t RateTable) IsDegraded() bool {
	for c := range t.Rates {
		if c != t.Base {
			return false
		}
	}
	return true
}

// Convert turns amount in from into to. Identical currencies pass through untouched;
// otherwise the amount is multiplied by the source rate, then divided by the target
// rate and rounded half-up to ConvertedAmountPrecision places.
func (t RateTable) Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, okFrom := t.Rate(from)
	toRate, okTo := t.Rate(to)
	if !okFrom || !okTo {
		return decimal.Zero, fmt.Errorf("%w: no currency exchange rate: %s or %s", apperrors.ErrValidation, from, to)
	}
	if toRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: zero exchange rate for %s", apperrors.ErrValidation, to)
	}
	return amount.Mul(fromRate).DivRound(toRate, ConvertedAmountPrecision), nil
}
