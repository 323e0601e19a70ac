package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
)

type boxRepository struct {
	view view
}

var _ portsrepo.BoxRepositoryFacade = (*boxRepository)(nil)

func (r *boxRepository) FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	b, ok := r.view.box(boxID)
	if !ok {
		return nil, fmt.Errorf("%w: box %s", apperrors.ErrNotFound, boxID)
	}
	cp := b.Clone()
	return &cp, nil
}

// FindBoxByIDForUpdate needs no row lock: a transaction already holds the store lock.
func (r *boxRepository) FindBoxByIDForUpdate(ctx context.Context, boxID string) (*domain.Box, error) {
	return r.FindBoxByID(ctx, boxID)
}

func (r *boxRepository) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	boxes := r.view.allBoxes()
	for i := range boxes {
		boxes[i] = boxes[i].Clone()
	}
	sortBoxes(boxes)
	return boxes, nil
}

func (r *boxRepository) SaveBox(ctx context.Context, box domain.Box) error {
	cp := box.Clone()
	cp.Normalize()
	if !r.view.putBox(cp, false) {
		return fmt.Errorf("%w: box %s already exists", apperrors.ErrDuplicate, box.BoxID)
	}
	return nil
}

func (r *boxRepository) UpdateBox(ctx context.Context, box domain.Box) error {
	if box.IsAssigned() {
		if _, ok := r.view.event(*box.EventID); !ok {
			return fmt.Errorf("%w: fundraising event of box %s", apperrors.ErrNotFound, box.BoxID)
		}
	}
	for c, amount := range box.Amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: negative %s amount in box %s", apperrors.ErrValidation, c, box.BoxID)
		}
	}
	cp := box.Clone()
	cp.Normalize()
	if !r.view.putBox(cp, true) {
		return fmt.Errorf("%w: box %s", apperrors.ErrNotFound, box.BoxID)
	}
	return nil
}

func (r *boxRepository) DeleteBox(ctx context.Context, boxID string) error {
	if !r.view.removeBox(boxID) {
		return fmt.Errorf("%w: box %s", apperrors.ErrNotFound, boxID)
	}
	return nil
}

type eventRepository struct {
	view view
}

var _ portsrepo.EventRepositoryFacade = (*eventRepository)(nil)

func (r *eventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	e, ok := r.view.event(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: fundraising event %s", apperrors.ErrNotFound, eventID)
	}
	return &e, nil
}

func (r *eventRepository) FindEventByIDForUpdate(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.FindEventByID(ctx, eventID)
}

func (r *eventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events := r.view.allEvents()
	sortEvents(events)
	return events, nil
}

func (r *eventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	if !event.Currency.IsSupported() {
		return fmt.Errorf("%w: unsupported account currency '%s'", apperrors.ErrValidation, event.Currency)
	}
	if !r.view.putEvent(event, false) {
		return fmt.Errorf("%w: fundraising event %s already exists", apperrors.ErrDuplicate, event.EventID)
	}
	return nil
}

func (r *eventRepository) UpdateEventBalance(ctx context.Context, event domain.Event) error {
	current, ok := r.view.event(event.EventID)
	if !ok {
		return fmt.Errorf("%w: fundraising event %s", apperrors.ErrNotFound, event.EventID)
	}
	current.Balance = event.Balance
	current.LastUpdatedAt = event.LastUpdatedAt
	current.LastUpdatedBy = event.LastUpdatedBy
	r.view.putEvent(current, true)
	return nil
}
