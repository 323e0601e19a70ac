package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/models"
	"github.com/SscSPs/charity_box_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelBox_EmitsEveryCurrency(t *testing.T) {
	eventID := "evt-1"
	box := domain.Box{
		BoxID:   "box-1",
		EventID: &eventID,
		Amounts: map[domain.Currency]decimal.Decimal{domain.EUR: decimal.NewFromInt(3)},
	}

	row, amounts := mapping.ToModelBox(box)

	assert.Equal(t, "box-1", row.BoxID)
	require.NotNil(t, row.EventID)
	assert.Equal(t, eventID, *row.EventID)
	require.Len(t, amounts, len(domain.SupportedCurrencies()))
	for _, a := range amounts {
		if a.Currency == "EUR" {
			assert.True(t, a.Amount.Equal(decimal.NewFromInt(3)))
		} else {
			assert.True(t, a.Amount.IsZero(), a.Currency)
		}
	}
}

func TestToModelBox_LeavesCallerAmountsUntouched(t *testing.T) {
	amounts := map[domain.Currency]decimal.Decimal{domain.PLN: decimal.NewFromInt(7)}
	box := domain.Box{BoxID: "box-3", Amounts: amounts}

	_, rows := mapping.ToModelBox(box)

	assert.Len(t, rows, len(domain.SupportedCurrencies()))
	assert.Len(t, amounts, 1)
	assert.Len(t, box.Amounts, 1)
	_, hasEUR := box.Amounts[domain.EUR]
	assert.False(t, hasEUR)
}

func TestToDomainBox_FillsMissingCurrencies(t *testing.T) {
	now := time.Now()
	row := models.Box{BoxID: "box-2", AuditFields: models.AuditFields{CreatedAt: now, CreatedBy: "u"}}
	amounts := []models.BoxAmount{
		{BoxID: "box-2", Currency: "USD", Amount: decimal.RequireFromString("1.50")},
		{BoxID: "box-2", Currency: "XXX", Amount: decimal.NewFromInt(9)},
	}

	box := mapping.ToDomainBox(row, amounts)

	assert.False(t, box.IsAssigned())
	assert.Len(t, box.Amounts, len(domain.SupportedCurrencies()))
	assert.Equal(t, "1.5", box.Amounts[domain.USD].String())
	assert.True(t, box.Amounts[domain.PLN].IsZero())
	assert.Equal(t, now, box.CreatedAt)
}

func TestEventMapping(t *testing.T) {
	event := domain.Event{
		EventID:  "evt-1",
		Name:     "Winter appeal",
		Balance:  decimal.RequireFromString("-4.20"),
		Currency: domain.GBP,
	}

	row := mapping.ToModelEvent(event)
	assert.Equal(t, "GBP", row.AccountCurrency)

	back := mapping.ToDomainEvent(row)
	assert.Equal(t, event.Name, back.Name)
	assert.Equal(t, domain.GBP, back.Currency)
	assert.True(t, back.Balance.Equal(event.Balance))
}
