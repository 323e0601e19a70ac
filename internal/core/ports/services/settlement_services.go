package services

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
)

// SettlementSvcFacade enforces box-to-event assignment and settles boxes into event accounts
type SettlementSvcFacade interface {
	// AssignBox links an empty box to an event.
	AssignBox(ctx context.Context, eventID string, boxID string, userID string) (*domain.Box, error)

	// SettleBox converts everything in the box into the event currency, credits the event
	// and zeroes the box as one unit.
	SettleBox(ctx context.Context, boxID string, userID string) (*domain.Settlement, error)
}
