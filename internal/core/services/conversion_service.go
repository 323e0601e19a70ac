package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// conversionService implements the CurrencySvcFacade interface
type conversionService struct {
	BaseService
	rates portssvc.RateSource
}

// NewConversionService creates a converter bound to a single rate source.
func NewConversionService(rates portssvc.RateSource) portssvc.CurrencySvcFacade {
	return &conversionService{rates: rates}
}

var _ portssvc.CurrencySvcFacade = (*conversionService)(nil)

func (s *conversionService) ListCurrencies(ctx context.Context) []domain.CurrencyInfo {
	return domain.CurrencyCatalog()
}

func (s *conversionService) CurrentRateTable(ctx context.Context) (domain.RateTable, error) {
	table, err := s.rates.FetchRateTable(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rate table", slog.String("source", s.rates.Name()))
		return domain.RateTable{}, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	return table, nil
}

func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	table, err := s.CurrentRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	converted, err := table.Convert(amount, from, to)
	if err != nil {
		s.LogWarn(ctx, "Conversion rejected",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.String("source", table.Source),
			slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	s.LogDebug(ctx, "Amount converted",
		slog.String("amount", amount.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("result", converted.String()))
	return converted, nil
}
