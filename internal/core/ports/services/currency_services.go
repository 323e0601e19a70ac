package services

import (
	"context"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSource supplies exchange rates quoted against the base currency
type RateSource interface {
	// FetchRateTable returns a table that always contains the base currency at rate 1.
	FetchRateTable(ctx context.Context) (domain.RateTable, error)

	// Name identifies the source in logs and settlement results.
	Name() string
}

// RateFeedClient reads the current rate table of an external exchange-rate feed
type RateFeedClient interface {
	FetchCurrentTable(ctx context.Context) ([]domain.FeedRate, error)
}

// CurrencyConverterSvc defines conversion operations
type CurrencyConverterSvc interface {
	// Convert converts amount between two currencies through one rate table.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error)

	// CurrentRateTable fetches one table so callers can convert many amounts with it.
	CurrentRateTable(ctx context.Context) (domain.RateTable, error)
}

// CurrencySvcFacade combines the currency catalog and conversion
type CurrencySvcFacade interface {
	CurrencyConverterSvc

	// ListCurrencies returns the supported currency catalog.
	ListCurrencies(ctx context.Context) []domain.CurrencyInfo
}
