package models

import "github.com/shopspring/decimal"

// Box represents a row of collection_boxes.
type Box struct {
	BoxID   string  `db:"box_id"`
	EventID *string `db:"event_id"` // Nullable
	AuditFields
}

// BoxAmount represents one currency row of collection_box_amounts.
type BoxAmount struct {
	BoxID    string          `db:"box_id"`
	Currency string          `db:"currency"`
	Amount   decimal.Decimal `db:"amount"`
}
