package services_test

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBoxRepository is a mock type for the BoxRepositoryFacade interface
type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockBoxRepository) FindBoxByIDForUpdate(ctx context.Context, boxID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockBoxRepository) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func (m *MockBoxRepository) SaveBox(ctx context.Context, box domain.Box) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepository) UpdateBox(ctx context.Context, box domain.Box) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepository) DeleteBox(ctx context.Context, boxID string) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

// MockEventRepository is a mock type for the EventRepositoryFacade interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) FindEventByIDForUpdate(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventBalance(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// passthroughUnitOfWork hands the mock repositories to the callback without a real transaction.
type passthroughUnitOfWork struct {
	boxes  *MockBoxRepository
	events *MockEventRepository
	calls  int
}

func (u *passthroughUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	u.calls++
	return fn(ctx, portsrepo.TxRepositories{Boxes: u.boxes, Events: u.events})
}

// MockRateSource is a mock type for the RateSource interface
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRateTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateSource) Name() string {
	return "mock"
}

// Helper functions

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testRateTable quotes EUR at 4.00 and USD at 5.00 against PLN; GBP is absent.
func testRateTable() domain.RateTable {
	table := domain.NewRateTable(domain.PLN, "mock")
	table.Set(domain.EUR, dec("4.00"))
	table.Set(domain.USD, dec("5.00"))
	return table
}

func assignedBox(boxID, eventID string) *domain.Box {
	box := domain.NewBox(boxID)
	box.EventID = &eventID
	return &box
}
