package mapping

import (
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/models"
)

// ToModelBox splits a domain box into its row and one amount row per currency.
func ToModelBox(d domain.Box) (models.Box, []models.BoxAmount) {
	box := models.Box{
		BoxID:       d.BoxID,
		EventID:     d.EventID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	norm := d.Clone()
	norm.Normalize()
	amounts := make([]models.BoxAmount, 0, len(norm.Amounts))
	for _, c := range domain.SupportedCurrencies() {
		amounts = append(amounts, models.BoxAmount{
			BoxID:    d.BoxID,
			Currency: c.String(),
			Amount:   norm.Amounts[c],
		})
	}
	return box, amounts
}

// ToDomainBox joins a box row with its amount rows.
// Currencies missing from the rows come back as zero.
func ToDomainBox(m models.Box, amounts []models.BoxAmount) domain.Box {
	box := domain.NewBox(m.BoxID)
	box.EventID = m.EventID
	box.AuditFields = ToDomainAuditFields(m.AuditFields)
	for _, a := range amounts {
		c := domain.Currency(a.Currency)
		if c.IsSupported() {
			box.Amounts[c] = a.Amount
		}
	}
	return box
}
