package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hodamousavipour/banking-dashboard-front/internal/apperrors"
	portssvc "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/services"
	"github.com/hodamousavipour/banking-dashboard-front/internal/dto"
	"github.com/hodamousavipour/banking-dashboard-front/internal/middleware"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/listview"

	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		txService: ts,
	}
}

// RegisterTransactionRoutes registers all transaction-related routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, txService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.GET("/export", h.exportTransactions)
		transactions.POST("/import", h.importTransactions)
	}
	rg.GET("/summary", h.getSummary)
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the full collection, or a filtered, sorted, paged view when query parameters are supplied
// @Tags transactions
// @Produce  json
// @Param   q query string false "Case-insensitive description substring"
// @Param   from query string false "Inclusive date lower bound (YYYY-MM-DD)"
// @Param   to query string false "Inclusive date upper bound (YYYY-MM-DD)"
// @Param   kind query string false "all | deposits | withdrawals"
// @Param   page query int false "1-based page" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txs, total, err := h.txService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	if !hasViewParams(c) {
		c.JSON(http.StatusOK, dto.ListTransactionsResponse{
			Items: dto.ToTransactionResponses(txs),
			Total: total,
		})
		return
	}

	view := listview.Derive(txs, listview.Filters{
		Q:    params.Q,
		From: params.From,
		To:   params.To,
		Kind: listview.Kind(params.Kind),
	}, params.Page, params.PageSize)

	logger.Info("Transactions listed", slog.Int("total", total), slog.Int("filtered", view.FilteredCount))
	c.JSON(http.StatusOK, dto.FilteredTransactionsResponse{
		Items:         dto.ToTransactionResponses(view.Items),
		Total:         total,
		FilteredCount: view.FilteredCount,
		TotalPages:    view.TotalPages,
		Page:          view.Page,
		PageSize:      view.PageSize,
	})
}

// hasViewParams reports whether the request asked for a derived view rather
// than the raw collection.
func hasViewParams(c *gin.Context) bool {
	for _, key := range []string{"q", "from", "to", "kind", "page", "pageSize"} {
		if _, ok := c.GetQuery(key); ok {
			return true
		}
	}
	return false
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a new transaction; the date defaults to today when omitted
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.txService.CreateTransaction(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Transaction rejected by validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created", slog.Int64("transaction_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to an existing transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("transaction_id", id))

	updated, err := h.txService.UpdateTransaction(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Transaction update rejected by validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	logger.Info("Transaction updated")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction from the collection
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.DeleteTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	logger = logger.With(slog.Int64("transaction_id", id))

	if err := h.txService.DeleteTransaction(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	logger.Info("Transaction deleted")
	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{Success: true})
}

// getSummary godoc
// @Summary Get the dashboard summary
// @Description Returns income, expense and balance derived from the full collection
// @Tags summary
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.txService.GetSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
