package domain

import (
	"fmt"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Box is a physical collection box. Amounts always carries an entry for every
// supported currency; EventID is a weak reference to the event it collects for.
type Box struct {
	BoxID   string                       `json:"boxID"`
	EventID *string                      `json:"eventID,omitempty"`
	Amounts map[Currency]decimal.Decimal `json:"amounts"`
	AuditFields
}

// BoxSummary is the list projection of a box.
type BoxSummary struct {
	BoxID    string `json:"id"`
	Assigned bool   `json:"assigned"`
	Empty    bool   `json:"empty"`
}

// NewBox returns an unassigned box with a zero amount for every supported currency.
func NewBox(boxID string) Box {
	return Box{
		BoxID:   boxID,
		Amounts: zeroAmounts(),
	}
}

func zeroAmounts() map[Currency]decimal.Decimal {
	amounts := make(map[Currency]decimal.Decimal, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		amounts[c] = decimal.Zero
	}
	return amounts
}

// Normalize fills in missing currencies with zero, e.g. after loading partial rows.
func (b *Box) Normalize() {
	if b.Amounts == nil {
		b.Amounts = zeroAmounts()
		return
	}
	for _, c := range supportedCurrencies {
		if _, ok := b.Amounts[c]; !ok {
			b.Amounts[c] = decimal.Zero
		}
	}
}

// IsAssigned reports whether the box points at an event.
func (b Box) IsAssigned() bool {
	return b.EventID != nil && *b.EventID != ""
}

// IsEmpty reports whether every currency amount is exactly zero.
func (b Box) IsEmpty() bool {
	for _, amount := range b.Amounts {
		if !amount.IsZero() {
			return false
		}
	}
	return true
}

// Summary projects the box into its list read-model.
func (b Box) Summary() BoxSummary {
	return BoxSummary{
		BoxID:    b.BoxID,
		Assigned: b.IsAssigned(),
		Empty:    b.IsEmpty(),
	}
}

// ValidateDeposit checks deposit arguments without touching box state.
func ValidateDeposit(currency Currency, amount *decimal.Decimal) error {
	if !currency.IsSupported() {
		return fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, currency)
	}
	if amount == nil {
		return fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must be higher or equal to 0", apperrors.ErrValidation)
	}
	return nil
}

// Deposit adds amount to the running total for currency.
// Unattributed money is refused: the box must already be assigned to an event.
func (b *Box) Deposit(currency Currency, amount decimal.Decimal) error {
	if err := ValidateDeposit(currency, &amount); err != nil {
		return err
	}
	if !b.IsAssigned() {
		return fmt.Errorf("%w: box %s is not assigned to any fundraising event", apperrors.ErrInvalidState, b.BoxID)
	}
	b.Normalize()
	b.Amounts[currency] = b.Amounts[currency].Add(amount)
	return nil
}

// AssignTo links the box to eventID. Only an empty box can be assigned.
func (b *Box) AssignTo(eventID string) error {
	if !b.IsEmpty() {
		return fmt.Errorf("%w: box %s is not empty and cannot be assigned", apperrors.ErrInvalidState, b.BoxID)
	}
	b.EventID = &eventID
	return nil
}

// Empty zeroes every currency and returns the amounts held before.
func (b *Box) Empty() map[Currency]decimal.Decimal {
	b.Normalize()
	previous := make(map[Currency]decimal.Decimal, len(b.Amounts))
	for c, amount := range b.Amounts {
		previous[c] = amount
		b.Amounts[c] = decimal.Zero
	}
	return previous
}

// NonZeroAmounts returns only the currencies holding money.
func (b Box) NonZeroAmounts() map[Currency]decimal.Decimal {
	out := make(map[Currency]decimal.Decimal)
	for c, amount := range b.Amounts {
		if !amount.IsZero() {
			out[c] = amount
		}
	}
	return out
}

// Clone returns a deep copy so callers cannot alias the amounts map.
func (b Box) Clone() Box {
	cp := b
	if b.EventID != nil {
		eventID := *b.EventID
		cp.EventID = &eventID
	}
	cp.Amounts = make(map[Currency]decimal.Decimal, len(b.Amounts))
	for c, amount := range b.Amounts {
		cp.Amounts[c] = amount
	}
	return cp
}
