package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// participantHandler handles HTTP requests related to an event's participants.
type participantHandler struct {
	eventService       portssvc.EventSvcFacade
	participantService portssvc.ParticipantSvcFacade
}

func registerParticipantRoutes(rg *gin.RouterGroup, es portssvc.EventSvcFacade, ps portssvc.ParticipantSvcFacade) {
	h := &participantHandler{eventService: es, participantService: ps}

	rg.GET("/events/:eventID/participants", h.listParticipants)
	rg.POST("/events/:eventID/participants", h.addParticipant)

	participants := rg.Group("/participants")
	{
		participants.GET("/:participantID", h.getParticipant)
		participants.POST("/:participantID/validate", h.validateParticipant)
		participants.DELETE("/:participantID", h.removeParticipant)
	}
}

// listParticipants godoc
// @Summary List an event's participants
// @Tags participants
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.ListParticipantsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/participants [get]
func (h *participantHandler) listParticipants(c *gin.Context) {
	eventID := c.Param("eventID")
	if _, err := h.eventService.FindEventByID(c.Request.Context(), eventID); err != nil {
		respondWithError(c, err, "Failed to list participants")
		return
	}

	participants, err := h.participantService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, err, "Failed to list participants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListParticipantsResponse(participants))
}

// addParticipant godoc
// @Summary Add a participant directly
// @Description Registers a participant without going through the join-request queue
// @Tags participants
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param participant body dto.CreateParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/participants [post]
func (h *participantHandler) addParticipant(c *gin.Context) {
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	participant, err := h.participantService.AddParticipant(c.Request.Context(), c.Param("eventID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add participant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// getParticipant godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID} [get]
func (h *participantHandler) getParticipant(c *gin.Context) {
	participant, err := h.participantService.GetParticipant(c.Request.Context(), c.Param("participantID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve participant")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// validateParticipant godoc
// @Summary Mark a participant as validated
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID}/validate [post]
func (h *participantHandler) validateParticipant(c *gin.Context) {
	participant, err := h.participantService.ValidateParticipant(c.Request.Context(), c.Param("participantID"))
	if err != nil {
		respondWithError(c, err, "Failed to validate participant")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// removeParticipant godoc
// @Summary Remove a participant
// @Description Fails with 409 while any transaction references the participant
// @Tags participants
// @Param participantID path string true "Participant ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID} [delete]
func (h *participantHandler) removeParticipant(c *gin.Context) {
	participantID := c.Param("participantID")
	if err := h.participantService.RemoveParticipant(c.Request.Context(), participantID); err != nil {
		respondWithError(c, err, "Failed to remove participant")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Participant removed", slog.String("participant_id", participantID))
	c.Status(http.StatusNoContent)
}
