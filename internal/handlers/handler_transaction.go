package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/SscSPs/event_split_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to an event's ledger.
type transactionHandler struct {
	eventService  portssvc.EventSvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, es portssvc.EventSvcFacade, ls portssvc.LedgerSvcFacade) {
	h := &transactionHandler{eventService: es, ledgerService: ls}

	rg.GET("/events/:eventID/transactions", h.listTransactions)
	rg.POST("/events/:eventID/transactions", h.addTransaction)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PATCH("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

func transactionCursor(t domain.Transaction) (time.Time, string) {
	return t.CreatedAt, t.TransactionID
}

// listTransactions godoc
// @Summary List an event's transactions
// @Description Returns transactions newest first, paginated by an opaque cursor
// @Tags transactions
// @Produce json
// @Param eventID path string true "Event ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	eventID := c.Param("eventID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	if _, err := h.eventService.FindEventByID(c.Request.Context(), eventID); err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	txns, err := h.ledgerService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	page, next, err := pagination.Page(txns, params.NextToken, params.Limit, transactionCursor)
	if err != nil {
		bindError(c, err, "pagination token")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page),
		NextToken:    next,
	})
}

// addTransaction godoc
// @Summary Record an expense
// @Tags transactions
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details; amount in minor units"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{eventID}/transactions [post]
func (h *transactionHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), c.Param("eventID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update; omitted fields keep their values
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("transactionID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deleting an unknown transaction succeeds
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("transactionID")); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
