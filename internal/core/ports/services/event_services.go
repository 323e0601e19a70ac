package services

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/shopspring/decimal"
)

// EventReaderSvc defines read operations for fundraising events
type EventReaderSvc interface {
	// GetEventByID retrieves a specific event.
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// GetFinancialReport lists name, balance and currency of every event.
	GetFinancialReport(ctx context.Context) ([]domain.EventReport, error)
}

// EventWriterSvc defines write operations for fundraising events
type EventWriterSvc interface {
	// CreateEvent creates an event, filling balance and currency from defaults when missing.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, userID string) (*domain.Event, error)

	// ApplyBalanceDelta adds a signed delta to the event balance.
	ApplyBalanceDelta(ctx context.Context, eventID string, delta decimal.Decimal, userID string) (*domain.Event, error)
}

// EventSvcFacade combines all event-related service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
