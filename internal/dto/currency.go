package dto

import (
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	IsBase       bool   `json:"isBase"`
}

// ConvertRequest defines the query parameters of a conversion.
type ConvertRequest struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,supported_currency"`
	To     string `form:"to" binding:"required,supported_currency"`
}

// ConvertResponse defines the result of a conversion.
type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// ToCurrencyResponse converts a domain.CurrencyInfo to CurrencyResponse DTO
func ToCurrencyResponse(info domain.CurrencyInfo) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: string(info.Code),
		Symbol:       info.Symbol,
		Name:         info.Name,
		IsBase:       info.IsBase,
	}
}

// ToListCurrencyResponse converts the catalog to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(infos []domain.CurrencyInfo) []CurrencyResponse {
	res := make([]CurrencyResponse, len(infos))
	for i, info := range infos {
		res[i] = ToCurrencyResponse(info)
	}
	return res
}
