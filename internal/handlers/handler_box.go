package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// boxHandler handles HTTP requests related to collection boxes.
type boxHandler struct {
	boxService        portssvc.BoxSvcFacade
	settlementService portssvc.SettlementSvcFacade
}

func newBoxHandler(bs portssvc.BoxSvcFacade, ss portssvc.SettlementSvcFacade) *boxHandler {
	return &boxHandler{
		boxService:        bs,
		settlementService: ss,
	}
}

// RegisterBoxRoutes registers routes related to collection boxes.
func RegisterBoxRoutes(rg *gin.RouterGroup, boxService portssvc.BoxSvcFacade, settlementService portssvc.SettlementSvcFacade) {
	h := newBoxHandler(boxService, settlementService)

	boxes := rg.Group("/boxes")
	{
		boxes.POST("", h.createBox)
		boxes.GET("", h.listBoxes)
		boxes.GET("/:boxID", h.getBox)
		boxes.DELETE("/:boxID", h.deleteBox)
		boxes.PUT("/:boxID/deposit", h.deposit)
		// add-money is the path older clients were given.
		boxes.PUT("/:boxID/add-money", h.deposit)
		boxes.POST("/:boxID/empty", h.emptyBox)
	}
}

// createBox godoc
// @Summary Register a new collection box
// @Description Creates an unassigned box holding zero of every supported currency
// @Tags boxes
// @Produce  json
// @Success 201 {object} dto.BoxResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create box"
// @Security BearerAuth
// @Router /boxes [post]
func (h *boxHandler) createBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := middleware.UserIDOrAnonymous(c)

	box, err := h.boxService.CreateBox(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create box")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoxResponse(box))
}

// listBoxes godoc
// @Summary List collection boxes
// @Description Lists every box with its assigned and empty flags
// @Tags boxes
// @Produce  json
// @Success 200 {array} dto.BoxSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list boxes"
// @Security BearerAuth
// @Router /boxes [get]
func (h *boxHandler) listBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.boxService.ListBoxSummaries(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list boxes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBoxSummaryResponse(summaries))
}

// getBox godoc
// @Summary Get a collection box
// @Tags boxes
// @Produce  json
// @Param   boxID path string true "Box ID"
// @Success 200 {object} dto.BoxResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Box not found"
// @Failure 500 {object} map[string]string "Failed to get box"
// @Security BearerAuth
// @Router /boxes/{boxID} [get]
func (h *boxHandler) getBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID := c.Param("boxID")

	box, err := h.boxService.GetBoxByID(c.Request.Context(), boxID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get box")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoxResponse(box))
}

// deleteBox godoc
// @Summary Unregister a collection box
// @Description Removes the box. Remaining money is discarded or the call is rejected, depending on BOX_DELETE_POLICY.
// @Tags boxes
// @Param   boxID path string true "Box ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Box still holds money"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Box not found"
// @Failure 500 {object} map[string]string "Failed to delete box"
// @Security BearerAuth
// @Router /boxes/{boxID} [delete]
func (h *boxHandler) deleteBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID := c.Param("boxID")
	userID := middleware.UserIDOrAnonymous(c)

	if err := h.boxService.DeleteBox(c.Request.Context(), boxID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete box")
		return
	}

	c.Status(http.StatusNoContent)
}

// deposit godoc
// @Summary Put money into a collection box
// @Description Adds a positive amount in one supported currency to an assigned box
// @Tags boxes
// @Accept  json
// @Produce  json
// @Param   boxID path string true "Box ID"
// @Param   deposit body dto.DepositRequest true "Deposit details"
// @Success 200 {object} dto.BoxResponse
// @Failure 400 {object} map[string]string "Invalid input or box not assigned"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Box not found"
// @Failure 500 {object} map[string]string "Failed to deposit"
// @Security BearerAuth
// @Router /boxes/{boxID}/deposit [put]
// @Router /boxes/{boxID}/add-money [put]
func (h *boxHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID := c.Param("boxID")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	box, err := h.boxService.Deposit(c.Request.Context(), boxID, req, middleware.UserIDOrAnonymous(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoxResponse(box))
}

// emptyBox godoc
// @Summary Empty a collection box into its event
// @Description Converts every currency in the box into the event currency, credits the event and zeroes the box
// @Tags boxes
// @Produce  json
// @Param   boxID path string true "Box ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Box not assigned or rate missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Box or event not found"
// @Failure 500 {object} map[string]string "Failed to empty box"
// @Security BearerAuth
// @Router /boxes/{boxID}/empty [post]
func (h *boxHandler) emptyBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boxID := c.Param("boxID")

	settlement, err := h.settlementService.SettleBox(c.Request.Context(), boxID, middleware.UserIDOrAnonymous(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to empty box")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(settlement))
}
