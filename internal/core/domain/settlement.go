package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement describes one "empty box into event" operation.
// It is returned to the caller and not stored.
type Settlement struct {
	BoxID      string                       `json:"boxID"`
	EventID    string                       `json:"eventID"`
	Currency   Currency                     `json:"currency"`
	Collected  map[Currency]decimal.Decimal `json:"collected"`
	Converted  map[Currency]decimal.Decimal `json:"converted"`
	Total      decimal.Decimal              `json:"total"`
	NewBalance decimal.Decimal              `json:"newBalance"`
	RateSource string                       `json:"rateSource,omitempty"`
	SettledAt  time.Time                    `json:"settledAt"`
}

// BoxDeletePolicy decides what happens to money left in a box that is deleted.
type BoxDeletePolicy string

const (
	// DeletePolicyDiscard zeroes the remaining amounts and deletes the box.
	DeletePolicyDiscard BoxDeletePolicy = "discard"
	// DeletePolicyRequireEmpty refuses to delete a box that still holds money.
	DeletePolicyRequireEmpty BoxDeletePolicy = "require_empty"
)

// IsValid reports whether p is a known policy.
func (p BoxDeletePolicy) IsValid() bool {
	return p == DeletePolicyDiscard || p == DeletePolicyRequireEmpty
}
