package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/middleware"
	"github.com/bukukas/bukukas_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to the transaction log.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
		transactions.POST("/seed", h.seedSampleData)
	}
}

// listFilterFromQuery builds the list/export filter from query parameters.
func listFilterFromQuery(c *gin.Context) (dto.ListTransactionsFilter, error) {
	filter := dto.ListTransactionsFilter{
		StoreName: c.Query("storeName"),
	}

	if typeParam := c.Query("type"); typeParam != "" {
		txnType := domain.TransactionType(typeParam)
		if !txnType.IsValid() {
			return filter, errors.New("type must be income or expense")
		}
		filter.Type = txnType
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return filter, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}

	if token := c.Query("nextToken"); token != "" {
		filter.NextToken = &token
	}
	return filter, nil
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a dated income or expense for a store inside the caller's writable set. Amounts are whole rupiah.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Store outside the caller's writable set"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		if fields := utils.ValidationErrorMap(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	scope, _ := middleware.GetScopeFromContext(c)

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), scope, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Store is outside your writable set"})
		default:
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller-visible slice of the transaction log, newest first, with optional store/type filters and cursor pagination.
// @Tags transactions
// @Produce json
// @Param storeName query string false "Filter by store name"
// @Param type query string false "Filter by type (income or expense)"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter, err := listFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), scope, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Hard-deletes a transaction the caller can see. Deleting an already-absent ID succeeds as a no-op.
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Transaction outside the caller's visible set"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, _ := middleware.GetScopeFromContext(c)

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), scope, c.Param("transactionID")); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Transaction is outside your visible set"})
			return
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// seedSampleData godoc
// @Summary Seed demo transactions
// @Description Inserts the demo transaction set as independent creates. Admin only. A partial failure leaves earlier records in place.
// @Tags transactions
// @Produce json
// @Success 201 {object} map[string]int "Number of records created"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Seeding failed partway"
// @Security BearerAuth
// @Router /transactions/seed [post]
func (h *transactionHandler) seedSampleData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	scope, _ := middleware.GetScopeFromContext(c)

	created, err := h.transactionService.SeedSampleData(c.Request.Context(), scope, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may seed sample data"})
			return
		}
		logger.Error("Sample data seeding failed partway", slog.String("error", err.Error()), slog.Int("created", created))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Seeding failed partway", "created": created})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}
