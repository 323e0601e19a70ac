package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/SscSPs/charity_box_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConvert_SameCurrencyPassesThroughWithoutFetch(t *testing.T) {
	src := new(MockRateSource)
	svc := services.NewConversionService(src)

	got, err := svc.Convert(context.Background(), dec("12.3456"), domain.GBP, domain.GBP)

	require.NoError(t, err)
	assert.Equal(t, "12.3456", got.String())
	src.AssertNotCalled(t, "FetchRateTable", mock.Anything)
}

func TestConvert_CrossRate(t *testing.T) {
	src := new(MockRateSource)
	src.On("FetchRateTable", mock.Anything).Return(testRateTable(), nil).Once()
	svc := services.NewConversionService(src)

	got, err := svc.Convert(context.Background(), dec("100.00"), domain.EUR, domain.USD)

	require.NoError(t, err)
	assert.True(t, got.Equal(dec("80.00")))
	src.AssertExpectations(t)
}

func TestConvert_MissingRate(t *testing.T) {
	src := new(MockRateSource)
	src.On("FetchRateTable", mock.Anything).Return(testRateTable(), nil).Once()
	svc := services.NewConversionService(src)

	_, err := svc.Convert(context.Background(), dec("1"), domain.GBP, domain.PLN)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestConvert_SourceError(t *testing.T) {
	src := new(MockRateSource)
	src.On("FetchRateTable", mock.Anything).Return(domain.RateTable{}, assert.AnError).Once()
	svc := services.NewConversionService(src)

	_, err := svc.Convert(context.Background(), dec("1"), domain.EUR, domain.PLN)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestListCurrencies(t *testing.T) {
	svc := services.NewConversionService(new(MockRateSource))

	catalog := svc.ListCurrencies(context.Background())

	require.Len(t, catalog, 4)
	assert.Equal(t, domain.PLN, catalog[0].Code)
	assert.True(t, catalog[0].IsBase)
}
