package repositories

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
)

// BoxReader defines read operations for collection boxes
type BoxReader interface {
	// FindBoxByID retrieves a box with its full currency map.
	FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error)

	// ListBoxes retrieves every box ordered by creation time.
	ListBoxes(ctx context.Context) ([]domain.Box, error)
}

// BoxLocker defines reads that lock the box until the surrounding transaction ends
type BoxLocker interface {
	// FindBoxByIDForUpdate retrieves a box and locks it for update.
	FindBoxByIDForUpdate(ctx context.Context, boxID string) (*domain.Box, error)
}

// BoxWriter defines write operations for collection boxes
type BoxWriter interface {
	// SaveBox persists a new box and its currency amounts.
	SaveBox(ctx context.Context, box domain.Box) error

	// UpdateBox persists the event reference, amounts and audit fields of an existing box.
	UpdateBox(ctx context.Context, box domain.Box) error

	// DeleteBox removes a box and its amounts.
	DeleteBox(ctx context.Context, boxID string) error
}

// BoxRepositoryFacade combines all box-related repository interfaces
type BoxRepositoryFacade interface {
	BoxReader
	BoxLocker
	BoxWriter
}
