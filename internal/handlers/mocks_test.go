package handlers_test

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BoxService ---
type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) GetBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}
func (m *MockBoxService) ListBoxSummaries(ctx context.Context) ([]domain.BoxSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BoxSummary), args.Error(1)
}
func (m *MockBoxService) CreateBox(ctx context.Context, userID string) (*domain.Box, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}
func (m *MockBoxService) Deposit(ctx context.Context, boxID string, req dto.DepositRequest, userID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}
func (m *MockBoxService) DeleteBox(ctx context.Context, boxID string, userID string) error {
	args := m.Called(ctx, boxID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BoxSvcFacade = (*MockBoxService)(nil)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) GetFinancialReport(ctx context.Context) ([]domain.EventReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventReport), args.Error(1)
}
func (m *MockEventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, userID string) (*domain.Event, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) ApplyBalanceDelta(ctx context.Context, eventID string, delta decimal.Decimal, userID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID, delta, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) AssignBox(ctx context.Context, eventID string, boxID string, userID string) (*domain.Box, error) {
	args := m.Called(ctx, eventID, boxID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}
func (m *MockSettlementService) SettleBox(ctx context.Context, boxID string, userID string) (*domain.Settlement, error) {
	args := m.Called(ctx, boxID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockCurrencyService) CurrentRateTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) []domain.CurrencyInfo {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CurrencyInfo)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}
