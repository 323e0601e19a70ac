package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	"github.com/SscSPs/charity_box_app/internal/models"
	"github.com/SscSPs/charity_box_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxEventRepository struct {
	db dbtx
}

func newPgxEventRepository(db dbtx) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{db: db}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const selectEvents = `
	SELECT event_id, name, account_balance, account_currency,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM fundraising_events
`

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.AccountBalance,
		&m.AccountCurrency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) findEvent(ctx context.Context, eventID string, lock bool) (*domain.Event, error) {
	query := selectEvents + ` WHERE event_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	m, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: fundraising event %s", apperrors.ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// FindEventByID retrieves a specific event by its unique identifier.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.findEvent(ctx, eventID, false)
}

// FindEventByIDForUpdate retrieves an event and locks its row until the transaction ends.
func (r *PgxEventRepository) FindEventByIDForUpdate(ctx context.Context, eventID string) (*domain.Event, error) {
	return r.findEvent(ctx, eventID, true)
}

func (r *PgxEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, selectEvents+` ORDER BY created_at, event_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, mapping.ToDomainEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	const query = `
		INSERT INTO fundraising_events (event_id, name, account_balance, account_currency,
		                                created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.EventID, m.Name, m.AccountBalance, m.AccountCurrency,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: fundraising event %s already exists", apperrors.ErrDuplicate, m.EventID)
		}
		if isPgError(err, pgCheckViolation) {
			return fmt.Errorf("%w: unsupported account currency '%s'", apperrors.ErrValidation, m.AccountCurrency)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEventBalance persists the balance and audit fields of an existing event.
func (r *PgxEventRepository) UpdateEventBalance(ctx context.Context, event domain.Event) error {
	const query = `
		UPDATE fundraising_events
		SET account_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE event_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, event.EventID, event.Balance, event.LastUpdatedAt, event.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance of event %s: %w", event.EventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: fundraising event %s", apperrors.ErrNotFound, event.EventID)
	}
	return nil
}
