package domain

import (
	"fmt"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
)

// Currency is an ISO 4217 code from the closed set of currencies a box can collect.
type Currency string

const (
	PLN Currency = "PLN"
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// BaseCurrency is the currency every exchange rate is quoted against.
const BaseCurrency = PLN

// supportedCurrencies keeps the catalog order stable for maps rendered as lists.
var supportedCurrencies = []Currency{PLN, EUR, USD, GBP}

var currencyDetails = map[Currency]CurrencyInfo{
	PLN: {Code: PLN, Name: "Polish Zloty", Symbol: "zł"},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€"},
	USD: {Code: USD, Name: "US Dollar", Symbol: "$"},
	GBP: {Code: GBP, Name: "Pound Sterling", Symbol: "£"},
}

// CurrencyInfo describes a supported currency for display purposes.
type CurrencyInfo struct {
	Code   Currency `json:"code"`
	Name   string   `json:"name"`
	Symbol string   `json:"symbol"`
	IsBase bool     `json:"isBase"`
}

// SupportedCurrencies returns a copy of the currency catalog in its fixed order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupported reports whether c belongs to the catalog.
func (c Currency) IsSupported() bool {
	_, ok := currencyDetails[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converts a raw code into a supported Currency.
// Codes must match exactly: "eur" and " EUR" are rejected.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, code)
	}
	return c, nil
}

// CurrencyCatalog lists every supported currency with its display details.
func CurrencyCatalog() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		info := currencyDetails[c]
		info.IsBase = c == BaseCurrency
		out = append(out, info)
	}
	return out
}
