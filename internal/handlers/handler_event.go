package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:eventID", h.getEvent)
	}
}

func registerPublicEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)
	rg.GET("/events/:code", h.lookupEventByCode)
}

// createEvent godoc
// @Summary Create an event
// @Description Creates a new shared event and assigns it a join code
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	organizerID, ok := middleware.GetOrganizerIDFromContext(c)
	if !ok {
		logger.Error("Organizer ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, organizerID)
	if err != nil {
		respondWithError(c, err, "Failed to create event")
		return
	}

	logger.Info("Event created", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} dto.ListEventsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

// getEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	event, err := h.eventService.FindEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// lookupEventByCode godoc
// @Summary Look up an event by join code
// @Description Public lookup used by guests before submitting a join request
// @Tags public
// @Produce json
// @Param code path string true "Event code"
// @Success 200 {object} dto.PublicEventResponse
// @Failure 404 {object} ErrorResponse
// @Router /public/events/{code} [get]
func (h *eventHandler) lookupEventByCode(c *gin.Context) {
	event, err := h.eventService.FindEventByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, err, "Failed to look up event")
		return
	}
	c.JSON(http.StatusOK, dto.ToPublicEventResponse(event))
}
