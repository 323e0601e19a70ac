package dto

import (
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest defines the data needed to put money into a box.
// Amount is a pointer so a missing amount can be told apart from zero.
type DepositRequest struct {
	Currency string           `json:"currency" binding:"required,supported_currency"`
	Amount   *decimal.Decimal `json:"amount"`
}

// BoxResponse defines the data returned for a single box.
type BoxResponse struct {
	BoxID         string                     `json:"id"`
	EventID       *string                    `json:"eventID,omitempty"`
	Assigned      bool                       `json:"assigned"`
	Empty         bool                       `json:"empty"`
	Amounts       map[string]decimal.Decimal `json:"amounts"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// BoxSummaryResponse defines one entry of the box list.
type BoxSummaryResponse struct {
	BoxID    string `json:"id"`
	Assigned bool   `json:"assigned"`
	Empty    bool   `json:"empty"`
}

// ToBoxResponse converts a domain.Box to BoxResponse DTO
func ToBoxResponse(box *domain.Box) BoxResponse {
	amounts := make(map[string]decimal.Decimal, len(box.Amounts))
	for c, amount := range box.Amounts {
		amounts[string(c)] = amount
	}
	return BoxResponse{
		BoxID:         box.BoxID,
		EventID:       box.EventID,
		Assigned:      box.IsAssigned(),
		Empty:         box.IsEmpty(),
		Amounts:       amounts,
		CreatedAt:     box.CreatedAt,
		CreatedBy:     box.CreatedBy,
		LastUpdatedAt: box.LastUpdatedAt,
		LastUpdatedBy: box.LastUpdatedBy,
	}
}

// ToListBoxSummaryResponse converts box summaries to their DTOs
func ToListBoxSummaryResponse(summaries []domain.BoxSummary) []BoxSummaryResponse {
	res := make([]BoxSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = BoxSummaryResponse{BoxID: s.BoxID, Assigned: s.Assigned, Empty: s.Empty}
	}
	return res
}
