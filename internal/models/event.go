package models

import "github.com/shopspring/decimal"

// Event represents a row of fundraising_events.
type Event struct {
	EventID         string          `db:"event_id"`
	Name            string          `db:"name"`
	AccountBalance  decimal.Decimal `db:"account_balance"`
	AccountCurrency string          `db:"account_currency"`
	AuditFields
}
