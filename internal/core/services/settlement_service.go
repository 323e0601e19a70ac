package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// errRatesRequired aborts a settlement transaction that met foreign money without a rate table.
var errRatesRequired = errors.New("exchange rates required")

// settlementService implements the SettlementSvcFacade interface
type settlementService struct {
	BaseService
	uow       portsrepo.UnitOfWork
	converter portssvc.CurrencyConverterSvc
	metrics   *metrics.Collector
}

// SettlementServiceOption is a functional option for configuring the settlement service
type SettlementServiceOption func(*settlementService)

// WithSettlementMetrics adds the metrics collector
func WithSettlementMetrics(m *metrics.Collector) SettlementServiceOption {
	return func(s *settlementService) {
		s.metrics = m
	}
}

// NewSettlementService creates the assignment and settlement orchestrator
func NewSettlementService(uow portsrepo.UnitOfWork, converter portssvc.CurrencyConverterSvc, options ...SettlementServiceOption) portssvc.SettlementSvcFacade {
	svc := &settlementService{
		uow:       uow,
		converter: converter,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

func (s *settlementService) AssignBox(ctx context.Context, eventID string, boxID string, userID string) (*domain.Box, error) {
	var assigned domain.Box
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.Events.FindEventByID(ctx, eventID); err != nil {
			return err
		}
		box, err := repos.Boxes.FindBoxByIDForUpdate(ctx, boxID)
		if err != nil {
			return err
		}
		if err := box.AssignTo(eventID); err != nil {
			return err
		}
		box.Touch(userID, time.Now())
		if err := repos.Boxes.UpdateBox(ctx, *box); err != nil {
			return err
		}
		assigned = *box
		return nil
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to assign box",
			slog.String("box_id", boxID),
			slog.String("event_id", eventID))
		return nil, err
	}

	s.LogInfo(ctx, "Box assigned to event",
		slog.String("box_id", boxID),
		slog.String("event_id", eventID))
	return &assigned, nil
}

func (s *settlementService) SettleBox(ctx context.Context, boxID string, userID string) (*domain.Settlement, error) {
	start := time.Now()

	settlement, err := s.settle(ctx, boxID, userID, nil)
	// The retry carries a table, so it cannot abort for missing rates again
	if errors.Is(err, errRatesRequired) {
		var table domain.RateTable
		table, err = s.converter.CurrentRateTable(ctx)
		if err == nil {
			settlement, err = s.settle(ctx, boxID, userID, &table)
		}
	}

	s.metrics.RecordSettlement(time.Since(start), err == nil)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to settle box", slog.String("box_id", boxID))
		return nil, err
	}

	s.metrics.RecordSettledAmount(settlement.Currency.String(), settlement.Total.InexactFloat64())
	s.LogInfo(ctx, "Box settled into event account",
		slog.String("box_id", boxID),
		slog.String("event_id", settlement.EventID),
		slog.String("total", settlement.Total.String()),
		slog.String("currency", settlement.Currency.String()))
	return settlement, nil
}

// settle runs one settlement attempt. With a nil table it succeeds only when
// no foreign non-zero amount needs converting.
func (s *settlementService) settle(ctx context.Context, boxID, userID string, table *domain.RateTable) (*domain.Settlement, error) {
	var result domain.Settlement
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		box, err := repos.Boxes.FindBoxByIDForUpdate(ctx, boxID)
		if err != nil {
			return err
		}
		if !box.IsAssigned() {
			return fmt.Errorf("%w: box %s is not assigned to any fundraising event", apperrors.ErrInvalidState, boxID)
		}
		event, err := repos.Events.FindEventByIDForUpdate(ctx, *box.EventID)
		if err != nil {
			return fmt.Errorf("event of box %s: %w", boxID, err)
		}

		collected := box.NonZeroAmounts()
		converted := make(map[domain.Currency]decimal.Decimal, len(collected))
		total := decimal.Zero
		for _, c := range domain.SupportedCurrencies() {
			amount, ok := collected[c]
			if !ok {
				continue
			}
			value := amount
			if c != event.Currency {
				if table == nil {
					return errRatesRequired
				}
				value, err = table.Convert(amount, c, event.Currency)
				if err != nil {
					return err
				}
			}
			converted[c] = value
			total = total.Add(value)
		}

		now := time.Now()
		event.ApplyBalanceDelta(total)
		event.Touch(userID, now)
		box.Empty()
		box.Touch(userID, now)

		if err := repos.Boxes.UpdateBox(ctx, *box); err != nil {
			return err
		}
		if err := repos.Events.UpdateEventBalance(ctx, *event); err != nil {
			return err
		}

		result = domain.Settlement{
			BoxID:      boxID,
			EventID:    event.EventID,
			Currency:   event.Currency,
			Collected:  collected,
			Converted:  converted,
			Total:      total,
			NewBalance: event.Balance,
			SettledAt:  now,
		}
		if table != nil {
			result.RateSource = table.Source
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
