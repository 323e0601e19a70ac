package services

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/dto"
)

// BoxReaderSvc defines read operations for collection boxes
type BoxReaderSvc interface {
	// GetBoxByID retrieves a box with its per-currency amounts.
	GetBoxByID(ctx context.Context, boxID string) (*domain.Box, error)

	// ListBoxSummaries lists every box with its assigned and empty flags.
	ListBoxSummaries(ctx context.Context) ([]domain.BoxSummary, error)
}

// BoxWriterSvc defines write operations for collection boxes
type BoxWriterSvc interface {
	// CreateBox registers a new, unassigned and empty box.
	CreateBox(ctx context.Context, userID string) (*domain.Box, error)

	// Deposit adds money in one currency to an assigned box.
	Deposit(ctx context.Context, boxID string, req dto.DepositRequest, userID string) (*domain.Box, error)

	// DeleteBox removes a box according to the configured delete policy.
	DeleteBox(ctx context.Context, boxID string, userID string) error
}

// BoxSvcFacade combines all box-related service interfaces
type BoxSvcFacade interface {
	BoxReaderSvc
	BoxWriterSvc
}
