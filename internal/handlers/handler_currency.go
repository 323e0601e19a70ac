package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/convert", h.convert)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.currencyService.ListCurrencies(c.Request.Context())))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts through the configured rate source, rounding half-up to 2 decimal places
// @Tags currencies
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input or rate missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Security BearerAuth
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondWithError(c, logger, fmt.Errorf("%w: invalid amount '%s'", apperrors.ErrValidation, req.Amount), "Failed to convert")
		return
	}
	from, err := domain.ParseCurrency(req.From)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}
	to, err := domain.ParseCurrency(req.To)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}

	converted, err := h.currencyService.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:          amount,
		From:            from.String(),
		To:              to.String(),
		ConvertedAmount: converted,
	})
}
