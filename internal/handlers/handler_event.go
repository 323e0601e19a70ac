package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to fundraising events.
type eventHandler struct {
	eventService      portssvc.EventSvcFacade
	settlementService portssvc.SettlementSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade, ss portssvc.SettlementSvcFacade) *eventHandler {
	return &eventHandler{
		eventService:      es,
		settlementService: ss,
	}
}

// RegisterEventRoutes registers routes related to fundraising events.
func RegisterEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, settlementService portssvc.SettlementSvcFacade) {
	h := newEventHandler(eventService, settlementService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("/report", h.financialReport)
		events.GET("/:eventID", h.getEvent)
		events.POST("/:eventID/assign-box/:boxID", h.assignBox)
	}
}

// createEvent godoc
// @Summary Create a fundraising event
// @Description Creates an event account. Missing balance and currency fall back to the configured defaults.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Event already exists"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, middleware.UserIDOrAnonymous(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// financialReport godoc
// @Summary Financial report
// @Description Lists name, account balance and currency of every event
// @Tags events
// @Produce  json
// @Success 200 {array} dto.EventReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build financial report"
// @Security BearerAuth
// @Router /events/report [get]
func (h *eventHandler) financialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.eventService.GetFinancialReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to build financial report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEventReportResponse(rows))
}

// getEvent godoc
// @Summary Get a fundraising event
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to get event"
// @Security BearerAuth
// @Router /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// assignBox godoc
// @Summary Assign a collection box to an event
// @Description Links an empty box to the event. An empty box may be moved between events.
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   boxID path string true "Box ID"
// @Success 200 {object} dto.BoxResponse
// @Failure 400 {object} map[string]string "Box is not empty"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Box or event not found"
// @Failure 500 {object} map[string]string "Failed to assign box"
// @Security BearerAuth
// @Router /events/{eventID}/assign-box/{boxID} [post]
func (h *eventHandler) assignBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	boxID := c.Param("boxID")
	logger = logger.With(slog.String("event_id", eventID), slog.String("box_id", boxID))

	box, err := h.settlementService.AssignBox(c.Request.Context(), eventID, boxID, middleware.UserIDOrAnonymous(c))
	if err != nil {
		respondWithError(c, logger, err, "Failed to assign box")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoxResponse(box))
}
