package dto

import (
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to create a fundraising event.
// Missing balance and currency fall back to the configured defaults.
type CreateEventRequest struct {
	Name            string           `json:"name"`
	AccountBalance  *decimal.Decimal `json:"accountBalance"`
	AccountCurrency *string          `json:"accountCurrency" binding:"omitempty,supported_currency"`
}

// EventResponse defines the data returned for a fundraising event.
type EventResponse struct {
	EventID         string          `json:"id"`
	Name            string          `json:"name"`
	AccountBalance  decimal.Decimal `json:"accountBalance"`
	AccountCurrency string          `json:"accountCurrency"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// EventReportResponse defines one row of the financial report.
type EventReportResponse struct {
	Name            string          `json:"name"`
	AccountBalance  decimal.Decimal `json:"accountBalance"`
	AccountCurrency string          `json:"accountCurrency"`
}

// ToEventResponse converts a domain.Event to EventResponse DTO
func ToEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		EventID:         event.EventID,
		Name:            event.Name,
		AccountBalance:  event.Balance,
		AccountCurrency: string(event.Currency),
		CreatedAt:       event.CreatedAt,
		CreatedBy:       event.CreatedBy,
		LastUpdatedAt:   event.LastUpdatedAt,
		LastUpdatedBy:   event.LastUpdatedBy,
	}
}

// ToListEventReportResponse converts report rows to their DTOs
func ToListEventReportResponse(rows []domain.EventReport) []EventReportResponse {
	res := make([]EventReportResponse, len(rows))
	for i, r := range rows {
		res[i] = EventReportResponse{
			Name:            r.Name,
			AccountBalance:  r.Balance,
			AccountCurrency: string(r.Currency),
		}
	}
	return res
}
