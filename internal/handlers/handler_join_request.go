package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// joinRequestHandler serves the guest submission endpoint and the organizer's queue.
type joinRequestHandler struct {
	eventService       portssvc.EventSvcFacade
	joinRequestService portssvc.JoinRequestSvcFacade
}

func registerPublicJoinRequestRoutes(rg *gin.RouterGroup, js portssvc.JoinRequestSvcFacade, limit gin.HandlerFunc) {
	h := &joinRequestHandler{joinRequestService: js}
	rg.POST("/join-requests", limit, h.submitJoinRequest)
}

func registerJoinRequestRoutes(rg *gin.RouterGroup, es portssvc.EventSvcFacade, js portssvc.JoinRequestSvcFacade) {
	h := &joinRequestHandler{eventService: es, joinRequestService: js}

	rg.GET("/events/:eventID/join-requests", h.listPending)

	requests := rg.Group("/join-requests")
	{
		requests.GET("/:requestID", h.getJoinRequest)
		requests.POST("/:requestID/accept", h.acceptJoinRequest)
		requests.POST("/:requestID/reject", h.rejectJoinRequest)
		requests.DELETE("/:requestID", h.deleteJoinRequest)
	}
}

// submitJoinRequest godoc
// @Summary Ask to join an event
// @Description Queues a join request for the organizer to accept or reject
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.CreateJoinRequestRequest true "Requester details"
// @Success 202 {object} dto.CreateJoinRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /public/join-requests [post]
func (h *joinRequestHandler) submitJoinRequest(c *gin.Context) {
	var req dto.CreateJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	id, err := h.joinRequestService.AddRequest(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to submit join request")
		return
	}
	c.JSON(http.StatusAccepted, dto.CreateJoinRequestResponse{JoinRequestID: id})
}

// listPending godoc
// @Summary Pending join requests for an event
// @Description Oldest first
// @Tags join-requests
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.ListJoinRequestsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/join-requests [get]
func (h *joinRequestHandler) listPending(c *gin.Context) {
	event, err := h.eventService.FindEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to list join requests")
		return
	}

	pending, err := h.joinRequestService.GetPendingByEventCode(c.Request.Context(), event.Code)
	if err != nil {
		respondWithError(c, err, "Failed to list join requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJoinRequestsResponse(pending))
}

// getJoinRequest godoc
// @Summary Get a join request
// @Tags join-requests
// @Produce json
// @Param requestID path string true "Join request ID"
// @Success 200 {object} dto.JoinRequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /join-requests/{requestID} [get]
func (h *joinRequestHandler) getJoinRequest(c *gin.Context) {
	jr, err := h.joinRequestService.GetRequest(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve join request")
		return
	}
	c.JSON(http.StatusOK, dto.ToJoinRequestResponse(jr))
}

// acceptJoinRequest godoc
// @Summary Accept a join request
// @Description Registers the requester as a participant. A request can be decided once.
// @Tags join-requests
// @Produce json
// @Param requestID path string true "Join request ID"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /join-requests/{requestID}/accept [post]
func (h *joinRequestHandler) acceptJoinRequest(c *gin.Context) {
	requestID := c.Param("requestID")
	participant, err := h.joinRequestService.AcceptRequest(c.Request.Context(), requestID)
	if err != nil {
		respondWithError(c, err, "Failed to accept join request")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Join request accepted",
		slog.String("join_request_id", requestID),
		slog.String("participant_id", participant.ParticipantID))
	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// rejectJoinRequest godoc
// @Summary Reject a join request
// @Tags join-requests
// @Produce json
// @Param requestID path string true "Join request ID"
// @Success 200 {object} dto.JoinRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /join-requests/{requestID}/reject [post]
func (h *joinRequestHandler) rejectJoinRequest(c *gin.Context) {
	jr, err := h.joinRequestService.RejectRequest(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		respondWithError(c, err, "Failed to reject join request")
		return
	}
	c.JSON(http.StatusOK, dto.ToJoinRequestResponse(jr))
}

// deleteJoinRequest godoc
// @Summary Delete a join request
// @Tags join-requests
// @Param requestID path string true "Join request ID"
// @Success 204
// @Security BearerAuth
// @Router /join-requests/{requestID} [delete]
func (h *joinRequestHandler) deleteJoinRequest(c *gin.Context) {
	if err := h.joinRequestService.DeleteRequest(c.Request.Context(), c.Param("requestID")); err != nil {
		respondWithError(c, err, "Failed to delete join request")
		return
	}
	c.Status(http.StatusNoContent)
}
