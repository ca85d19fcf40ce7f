package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	exportService    portssvc.ExportSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, es portssvc.ExportSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		exportService:    es,
	}
}

// registerReportingRoutes registers routes for summaries, analytics and export.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newReportingHandler(reportingService, exportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/analytics", h.getAnalytics)
		reports.GET("/export", h.exportTransactions)
	}
}

// getSummary godoc
// @Summary Financial summary
// @Description Computes the caller-visible income/expense/balance totals, globally and per store. A store-admin whose assigned store is not registered gets an empty summary with unresolvedScope set.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, unresolved, err := h.reportingService.Summary(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary, h.reportingService.Now(), unresolved))
}

// getAnalytics godoc
// @Summary Period-bucketed analytics
// @Description Computes the income/expense series bucketed by period over a fixed reporting window. Admin only.
// @Tags reports
// @Produce json
// @Param granularity query string false "daily, weekly, monthly or yearly (default monthly)"
// @Param type query string false "Filter by type (income or expense)"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid granularity or type"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Security BearerAuth
// @Router /reports/analytics [get]
func (h *reportingHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	granularity := domain.Granularity(c.DefaultQuery("granularity", string(domain.Monthly)))

	var typeFilter domain.TransactionType
	if typeParam := c.Query("type"); typeParam != "" {
		typeFilter = domain.TransactionType(typeParam)
		if !typeFilter.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
	}

	buckets, totals, err := h.reportingService.Analytics(c.Request.Context(), scope, granularity, typeFilter, h.reportingService.Now())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may view analytics"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(granularity, buckets, totals))
}

// exportTransactions godoc
// @Summary Export transactions to a spreadsheet
// @Description Renders the caller-visible, filter-restricted transaction table plus its totals to an xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param storeName query string false "Filter by store name"
// @Param type query string false "Filter by type (income or expense)"
// @Success 200 {file} binary "xlsx workbook"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 409 {object} map[string]string "Assigned store not registered"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportingHandler) exportTransactions(c *gin.Context) {
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

	data, filename, err := h.exportService.ExportTransactions(c.Request.Context(), scope, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrScopeUnresolved) {
			c.JSON(http.StatusConflict, gin.H{"error": "Your assigned store is not registered; contact an administrator"})
			return
		}
		logger.Error("Failed to export transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
