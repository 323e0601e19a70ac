package repositories

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
)

// EventReader defines read operations for fundraising events
type EventReader interface {
	// FindEventByID retrieves a specific event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves every event ordered by creation time.
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// EventLocker defines reads that lock the event until the surrounding transaction ends
type EventLocker interface {
	// FindEventByIDForUpdate retrieves an event and locks it for update.
	FindEventByIDForUpdate(ctx context.Context, eventID string) (*domain.Event, error)
}

// EventWriter defines write operations for fundraising events
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEventBalance persists the balance and audit fields of an existing event.
	UpdateEventBalance(ctx context.Context, event domain.Event) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventLocker
	EventWriter
}
