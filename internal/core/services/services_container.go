package services

import (
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/platform/config"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rates portssvc.RateSource, collector *metrics.Collector) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The converter is shared so the orchestrator and the HTTP converter use one rate source
	container.Currency = NewConversionService(rates)

	container.Box = NewBoxService(
		repos.BoxRepo,
		repos.UnitOfWork,
		WithDeletePolicy(domain.BoxDeletePolicy(cfg.BoxDeletePolicy)),
		WithBoxMetrics(collector),
	)

	container.Event = NewEventService(
		repos.EventRepo,
		repos.UnitOfWork,
		WithDefaultBalance(cfg.DefaultEventBalance),
		WithDefaultCurrency(domain.Currency(cfg.DefaultEventCurrency)),
		WithEventMetrics(collector),
	)

	container.Settlement = NewSettlementService(
		repos.UnitOfWork,
		container.Currency,
		WithSettlementMetrics(collector),
	)

	return container
}
