package domain

import "github.com/shopspring/decimal"

// Event is a fundraising campaign with one account kept in a single currency.
// Negative (debit) balances are a valid state.
type Event struct {
	EventID  string          `json:"eventID"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"accountBalance"`
	Currency Currency        `json:"accountCurrency"`
	AuditFields
}

// EventReport is the financial report row of an event.
type EventReport struct {
	EventID  string          `json:"eventID"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"accountBalance"`
	Currency Currency        `json:"accountCurrency"`
}

// ApplyBalanceDelta adds delta, which may be negative, to the account balance.
func (e *Event) ApplyBalanceDelta(delta decimal.Decimal) {
	e.Balance = e.Balance.Add(delta)
}

// Report projects the event into its report row.
func (e Event) Report() EventReport {
	return EventReport{
		EventID:  e.EventID,
		Name:     e.Name,
		Balance:  e.Balance,
		Currency: e.Currency,
	}
}
