package mapping

import (
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/models"
)

func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:         d.EventID,
		Name:            d.Name,
		AccountBalance:  d.Balance,
		AccountCurrency: d.Currency.String(),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:     m.EventID,
		Name:        m.Name,
		Balance:     m.AccountBalance,
		Currency:    domain.Currency(m.AccountCurrency),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
