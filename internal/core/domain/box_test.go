package domain_test

import (
	"testing"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func TestNewBox_HasZeroForEveryCurrency(t *testing.T) {
	box := domain.NewBox("box-1")

	require.Len(t, box.Amounts, len(domain.SupportedCurrencies()))
	for _, c := range domain.SupportedCurrencies() {
		amount, ok := box.Amounts[c]
		assert.True(t, ok, "missing currency %s", c)
		assert.True(t, amount.IsZero(), "currency %s should start at zero", c)
	}
	assert.False(t, box.IsAssigned())
	assert.True(t, box.IsEmpty())
}

func TestBox_Normalize(t *testing.T) {
	box := domain.Box{BoxID: "box-1", Amounts: map[domain.Currency]decimal.Decimal{
		domain.EUR: decimal.NewFromInt(3),
	}}

	box.Normalize()

	assert.Len(t, box.Amounts, len(domain.SupportedCurrencies()))
	assert.True(t, box.Amounts[domain.EUR].Equal(decimal.NewFromInt(3)))
	assert.True(t, box.Amounts[domain.PLN].IsZero())

	var empty domain.Box
	empty.Normalize()
	assert.Len(t, empty.Amounts, len(domain.SupportedCurrencies()))
}

func TestBox_Deposit(t *testing.T) {
	tests := []struct {
		name     string
		assigned bool
		currency domain.Currency
		amount   decimal.Decimal
		wantErr  error
	}{
		{name: "unassigned box", assigned: false, currency: domain.PLN, amount: decimal.NewFromInt(1), wantErr: apperrors.ErrInvalidState},
		{name: "negative amount", assigned: true, currency: domain.PLN, amount: decimal.NewFromInt(-1), wantErr: apperrors.ErrValidation},
		{name: "unsupported currency", assigned: true, currency: domain.Currency("CHF"), amount: decimal.NewFromInt(1), wantErr: apperrors.ErrValidation},
		{name: "zero amount", assigned: true, currency: domain.USD, amount: decimal.Zero},
		{name: "positive amount", assigned: true, currency: domain.GBP, amount: decimal.RequireFromString("12.34")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := domain.NewBox("box-1")
			if tt.assigned {
				box.EventID = stringPtr("event-1")
			}

			err := box.Deposit(tt.currency, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, box.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.True(t, box.Amounts[tt.currency].Equal(tt.amount))
		})
	}
}

func TestBox_DepositAccumulates(t *testing.T) {
	box := domain.NewBox("box-1")
	box.EventID = stringPtr("event-1")

	require.NoError(t, box.Deposit(domain.PLN, decimal.NewFromInt(50)))
	require.NoError(t, box.Deposit(domain.PLN, decimal.NewFromInt(50)))

	assert.True(t, box.Amounts[domain.PLN].Equal(decimal.NewFromInt(100)))
	assert.False(t, box.IsEmpty())
}

func TestValidateDeposit_NilAmount(t *testing.T) {
	err := domain.ValidateDeposit(domain.PLN, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = domain.ValidateDeposit(domain.PLN, decimalPtr(decimal.NewFromInt(1)))
	assert.NoError(t, err)
}

func TestBox_AssignTo(t *testing.T) {
	box := domain.NewBox("box-1")
	require.NoError(t, box.AssignTo("event-1"))
	require.True(t, box.IsAssigned())
	assert.Equal(t, "event-1", *box.EventID)

	require.NoError(t, box.Deposit(domain.EUR, decimal.NewFromInt(1)))

	err := box.AssignTo("event-2")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, "event-1", *box.EventID)
}

func TestBox_Empty(t *testing.T) {
	box := domain.NewBox("box-1")
	box.EventID = stringPtr("event-1")
	require.NoError(t, box.Deposit(domain.PLN, decimal.NewFromInt(10)))
	require.NoError(t, box.Deposit(domain.EUR, decimal.NewFromInt(2)))

	previous := box.Empty()

	assert.True(t, box.IsEmpty())
	assert.Len(t, box.Amounts, len(domain.SupportedCurrencies()))
	assert.True(t, previous[domain.PLN].Equal(decimal.NewFromInt(10)))
	assert.True(t, previous[domain.EUR].Equal(decimal.NewFromInt(2)))
	assert.True(t, box.IsAssigned(), "emptying keeps the event reference")
}

func TestBox_CloneDoesNotAlias(t *testing.T) {
	box := domain.NewBox("box-1")
	box.EventID = stringPtr("event-1")

	cp := box.Clone()
	cp.Amounts[domain.PLN] = decimal.NewFromInt(5)
	*cp.EventID = "event-2"

	assert.True(t, box.Amounts[domain.PLN].IsZero())
	assert.Equal(t, "event-1", *box.EventID)
}

func TestBox_Summary(t *testing.T) {
	box := domain.NewBox("box-1")
	assert.Equal(t, domain.BoxSummary{BoxID: "box-1", Assigned: false, Empty: true}, box.Summary())

	box.EventID = stringPtr("event-1")
	require.NoError(t, box.Deposit(domain.USD, decimal.NewFromInt(1)))
	assert.Equal(t, domain.BoxSummary{BoxID: "box-1", Assigned: true, Empty: false}, box.Summary())
	assert.Len(t, box.NonZeroAmounts(), 1)
}
