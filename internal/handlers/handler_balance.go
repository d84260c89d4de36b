package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerBalanceRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: bs}

	rg.GET("/events/:eventID/balances", h.getBalances)
	rg.GET("/events/:eventID/settlements", h.getSettlements)
	rg.GET("/events/:eventID/summary", h.getSummary)
}

// getBalances godoc
// @Summary Net balance per participant
// @Description Positive amounts are owed to the participant, negative amounts are owed by them
// @Tags balances
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.BalancesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	eventID := c.Param("eventID")
	balances, err := h.balanceService.ComputeBalances(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(eventID, balances))
}

// getSettlements godoc
// @Summary Transfers that settle the event
// @Tags balances
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.SettlementsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/settlements [get]
func (h *balanceHandler) getSettlements(c *gin.Context) {
	eventID := c.Param("eventID")
	settlements, err := h.balanceService.ComputeSettlements(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, err, "Failed to compute settlements")
		return
	}
	c.JSON(http.StatusOK, dto.SettlementsResponse{
		EventID:     eventID,
		Settlements: dto.ToSettlementResponses(settlements),
	})
}

// getSummary godoc
// @Summary Paid, owed and net amounts with a settling plan
// @Tags balances
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} dto.EventSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/summary [get]
func (h *balanceHandler) getSummary(c *gin.Context) {
	summary, err := h.balanceService.Summary(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondWithError(c, err, "Failed to summarize event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventSummaryResponse(summary))
}
