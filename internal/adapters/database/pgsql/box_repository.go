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
	"github.com/shopspring/decimal"
)

type PgxBoxRepository struct {
	db dbtx
}

func newPgxBoxRepository(db dbtx) portsrepo.BoxRepositoryFacade {
	return &PgxBoxRepository{db: db}
}

var _ portsrepo.BoxRepositoryFacade = (*PgxBoxRepository)(nil)

// selectBoxes joins each box with its currency rows for unlocked listing.
const selectBoxes = `
	SELECT b.box_id, b.event_id, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
	       a.currency, a.amount
	FROM collection_boxes b
	LEFT JOIN collection_box_amounts a ON a.box_id = b.box_id
`

// scanBoxes folds joined rows into boxes, keeping the row order of the query.
func scanBoxes(rows pgx.Rows) ([]domain.Box, error) {
	defer rows.Close()

	var order []string
	rowsByID := make(map[string]models.Box)
	amountsByID := make(map[string][]models.BoxAmount)

	for rows.Next() {
		var box models.Box
		var currency *string
		var amount decimal.NullDecimal
		err := rows.Scan(
			&box.BoxID,
			&box.EventID,
			&box.CreatedAt,
			&box.CreatedBy,
			&box.LastUpdatedAt,
			&box.LastUpdatedBy,
			&currency,
			&amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box row: %w", err)
		}
		if _, seen := rowsByID[box.BoxID]; !seen {
			order = append(order, box.BoxID)
			rowsByID[box.BoxID] = box
		}
		if currency != nil && amount.Valid {
			amountsByID[box.BoxID] = append(amountsByID[box.BoxID], models.BoxAmount{
				BoxID:    box.BoxID,
				Currency: *currency,
				Amount:   amount.Decimal,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating box rows: %w", err)
	}

	boxes := make([]domain.Box, 0, len(order))
	for _, id := range order {
		boxes = append(boxes, mapping.ToDomainBox(rowsByID[id], amountsByID[id]))
	}
	return boxes, nil
}

const selectBoxRow = `
	SELECT box_id, event_id, created_at, created_by, last_updated_at, last_updated_by
	FROM collection_boxes
	WHERE box_id = $1
`

const selectBoxAmounts = `
	SELECT box_id, currency, amount
	FROM collection_box_amounts
	WHERE box_id = $1
`

// findBox reads the box row and then its amounts in a second statement.
// Under READ COMMITTED a statement that waited for the box lock keeps its old
// snapshot for joined rows, so the amounts must come from a statement started
// after the lock was granted.
func (r *PgxBoxRepository) findBox(ctx context.Context, boxID string, lock bool) (*domain.Box, error) {
	rowQuery, amountQuery := selectBoxRow, selectBoxAmounts
	if lock {
		rowQuery += ` FOR UPDATE`
		amountQuery += ` FOR UPDATE`
	}

	var row models.Box
	err := r.db.QueryRow(ctx, rowQuery, boxID).Scan(
		&row.BoxID,
		&row.EventID,
		&row.CreatedAt,
		&row.CreatedBy,
		&row.LastUpdatedAt,
		&row.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: box %s", apperrors.ErrNotFound, boxID)
		}
		return nil, fmt.Errorf("failed to query box %s: %w", boxID, err)
	}

	rows, err := r.db.Query(ctx, amountQuery, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query amounts of box %s: %w", boxID, err)
	}
	defer rows.Close()

	var amounts []models.BoxAmount
	for rows.Next() {
		var a models.BoxAmount
		if err := rows.Scan(&a.BoxID, &a.Currency, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan box amount: %w", err)
		}
		amounts = append(amounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating box amounts: %w", err)
	}

	box := mapping.ToDomainBox(row, amounts)
	return &box, nil
}

// FindBoxByID retrieves a box with its full currency map.
func (r *PgxBoxRepository) FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	return r.findBox(ctx, boxID, false)
}

// FindBoxByIDForUpdate retrieves a box and locks its row until the transaction ends.
func (r *PgxBoxRepository) FindBoxByIDForUpdate(ctx context.Context, boxID string) (*domain.Box, error) {
	return r.findBox(ctx, boxID, true)
}

func (r *PgxBoxRepository) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	rows, err := r.db.Query(ctx, selectBoxes+` ORDER BY b.created_at, b.box_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes: %w", err)
	}
	boxes, err := scanBoxes(rows)
	if err != nil {
		return nil, err
	}
	if boxes == nil {
		return []domain.Box{}, nil
	}
	return boxes, nil
}

// upsertAmounts writes every currency row of a box in one round trip.
func (r *PgxBoxRepository) upsertAmounts(ctx context.Context, amounts []models.BoxAmount) error {
	const query = `
		INSERT INTO collection_box_amounts (box_id, currency, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (box_id, currency) DO UPDATE SET amount = EXCLUDED.amount;
	`
	batch := &pgx.Batch{}
	for _, a := range amounts {
		batch.Queue(query, a.BoxID, a.Currency, a.Amount)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range amounts {
		if _, err := results.Exec(); err != nil {
			if isPgError(err, pgCheckViolation) {
				return fmt.Errorf("%w: box amounts must not be negative", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to write box amounts: %w", err)
		}
	}
	return nil
}

// SaveBox inserts a new box together with its currency rows.
func (r *PgxBoxRepository) SaveBox(ctx context.Context, box domain.Box) error {
	row, amounts := mapping.ToModelBox(box)
	const query = `
		INSERT INTO collection_boxes (box_id, event_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		row.BoxID, row.EventID, row.CreatedAt, row.CreatedBy, row.LastUpdatedAt, row.LastUpdatedBy)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: box %s already exists", apperrors.ErrDuplicate, row.BoxID)
		}
		return fmt.Errorf("failed to insert box: %w", err)
	}
	return r.upsertAmounts(ctx, amounts)
}

// UpdateBox persists the event reference, amounts and audit fields of a box.
func (r *PgxBoxRepository) UpdateBox(ctx context.Context, box domain.Box) error {
	row, amounts := mapping.ToModelBox(box)
	const query = `
		UPDATE collection_boxes
		SET event_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE box_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, row.BoxID, row.EventID, row.LastUpdatedAt, row.LastUpdatedBy)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: fundraising event of box %s", apperrors.ErrNotFound, row.BoxID)
		}
		return fmt.Errorf("failed to update box %s: %w", row.BoxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: box %s", apperrors.ErrNotFound, row.BoxID)
	}
	return r.upsertAmounts(ctx, amounts)
}

// DeleteBox removes a box; its amount rows go with it through the cascade.
func (r *PgxBoxRepository) DeleteBox(ctx context.Context, boxID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM collection_boxes WHERE box_id = $1;`, boxID)
	if err != nil {
		return fmt.Errorf("failed to delete box %s: %w", boxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: box %s", apperrors.ErrNotFound, boxID)
	}
	return nil
}
