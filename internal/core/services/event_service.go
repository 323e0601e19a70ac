package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// eventService implements the EventSvcFacade interface
type eventService struct {
	BaseService
	eventRepo       portsrepo.EventReader
	uow             portsrepo.UnitOfWork
	defaultBalance  decimal.Decimal
	defaultCurrency domain.Currency
	metrics         *metrics.Collector
}

// EventServiceOption is a functional option for configuring the event service
type EventServiceOption func(*eventService)

// WithDefaultBalance sets the balance used when a request leaves it out
func WithDefaultBalance(balance decimal.Decimal) EventServiceOption {
	return func(s *eventService) {
		s.defaultBalance = balance
	}
}

// WithDefaultCurrency sets the account currency used when a request leaves it out
func WithDefaultCurrency(currency domain.Currency) EventServiceOption {
	return func(s *eventService) {
		if currency.IsSupported() {
			s.defaultCurrency = currency
		}
	}
}

// WithEventMetrics adds the metrics collector
func WithEventMetrics(m *metrics.Collector) EventServiceOption {
	return func(s *eventService) {
		s.metrics = m
	}
}

// NewEventService creates a new event service with the provided options
func NewEventService(repo portsrepo.EventReader, uow portsrepo.UnitOfWork, options ...EventServiceOption) portssvc.EventSvcFacade {
	svc := &eventService{
		eventRepo:       repo,
		uow:             uow,
		defaultBalance:  decimal.Zero,
		defaultCurrency: domain.BaseCurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, userID string) (*domain.Event, error) {
	balance := s.defaultBalance
	if req.AccountBalance != nil {
		balance = *req.AccountBalance
	}

	currency := s.defaultCurrency
	if req.AccountCurrency != nil {
		parsed, err := domain.ParseCurrency(*req.AccountCurrency)
		if err != nil {
			return nil, err
		}
		currency = parsed
	}

	event := domain.Event{
		EventID:     uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Balance:     balance,
		Currency:    currency,
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Events.SaveEvent(ctx, event)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("event_id", event.EventID))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.LogInfo(ctx, "Fundraising event created",
		slog.String("event_id", event.EventID),
		slog.String("currency", event.Currency.String()))
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find event by ID", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}

func (s *eventService) ApplyBalanceDelta(ctx context.Context, eventID string, delta decimal.Decimal, userID string) (*domain.Event, error) {
	var updated domain.Event
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		event, err := repos.Events.FindEventByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		event.ApplyBalanceDelta(delta)
		event.Touch(userID, time.Now())
		if err := repos.Events.UpdateEventBalance(ctx, *event); err != nil {
			return err
		}
		updated = *event
		return nil
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to apply balance delta", slog.String("event_id", eventID))
		return nil, err
	}

	s.metrics.RecordBalanceAdjustment(updated.Currency.String(), delta.InexactFloat64())
	s.LogInfo(ctx, "Event balance changed",
		slog.String("event_id", eventID),
		slog.String("delta", delta.String()),
		slog.String("balance", updated.Balance.String()))
	return &updated, nil
}

func (s *eventService) GetFinancialReport(ctx context.Context) ([]domain.EventReport, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events for report")
		return nil, fmt.Errorf("failed to build financial report: %w", err)
	}

	report := make([]domain.EventReport, 0, len(events))
	for _, event := range events {
		report = append(report, event.Report())
	}
	return report, nil
}
