package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storeHandler handles HTTP requests related to stores.
type storeHandler struct {
	storeService portssvc.StoreSvcFacade
}

// newStoreHandler creates a new storeHandler.
func newStoreHandler(ss portssvc.StoreSvcFacade) *storeHandler {
	return &storeHandler{
		storeService: ss,
	}
}

// registerStoreRoutes registers routes related to store management.
func registerStoreRoutes(rg *gin.RouterGroup, storeService portssvc.StoreSvcFacade) {
	h := newStoreHandler(storeService)

	stores := rg.Group("/stores")
	{
		stores.POST("", h.createStore)
		stores.GET("", h.listStores)
		stores.GET("/:storeID", h.getStoreByID)
		stores.PUT("/:storeID", h.updateStore)
		stores.DELETE("/:storeID", h.deleteStore)
	}
}

// createStore godoc
// @Summary Register a new store
// @Description Adds a store to the registry. Admin only.
// @Tags stores
// @Accept json
// @Produce json
// @Param store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Store name already exists"
// @Failure 500 {object} map[string]string "Failed to create store"
// @Security BearerAuth
// @Router /stores [post]
func (h *storeHandler) createStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStore", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	scope, _ := middleware.GetScopeFromContext(c)

	store, err := h.storeService.CreateStore(c.Request.Context(), scope, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage stores"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Store with that name already exists"})
		default:
			logger.Error("Failed to create store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

// listStores godoc
// @Summary List stores
// @Description Lists the stores visible to the caller, plus the store names the caller may attribute new transactions to.
// @Tags stores
// @Produce json
// @Success 200 {object} dto.ListStoresResponse
// @Failure 500 {object} map[string]string "Failed to list stores"
// @Security BearerAuth
// @Router /stores [get]
func (h *storeHandler) listStores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stores, writableNames, err := h.storeService.ListStores(c.Request.Context(), scope)
	if err != nil {
		logger.Error("Failed to list stores", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stores"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStoresResponse(stores, writableNames))
}

// getStoreByID godoc
// @Summary Get a store by ID
// @Description Retrieves one store record, if visible to the caller.
// @Tags stores
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 500 {object} map[string]string "Failed to retrieve store"
// @Security BearerAuth
// @Router /stores/{storeID} [get]
func (h *storeHandler) getStoreByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, _ := middleware.GetScopeFromContext(c)

	store, err := h.storeService.GetStoreByID(c.Request.Context(), scope, c.Param("storeID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		logger.Error("Failed to get store", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve store"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// updateStore godoc
// @Summary Update store metadata
// @Description Edits a store's name, description, address or phone. Admin only.
// @Tags stores
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param store body dto.UpdateStoreRequest true "Store details"
// @Success 200 {object} dto.StoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 409 {object} map[string]string "Store name already exists"
// @Failure 500 {object} map[string]string "Failed to update store"
// @Security BearerAuth
// @Router /stores/{storeID} [put]
func (h *storeHandler) updateStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	scope, _ := middleware.GetScopeFromContext(c)

	store, err := h.storeService.UpdateStore(c.Request.Context(), scope, c.Param("storeID"), req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage stores"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Store with that name already exists"})
		default:
			logger.Error("Failed to update store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// deleteStore godoc
// @Summary Delete a store
// @Description Removes the store record only; transactions referencing the store's name are left in place. Admin only.
// @Tags stores
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 500 {object} map[string]string "Failed to delete store"
// @Security BearerAuth
// @Router /stores/{storeID} [delete]
func (h *storeHandler) deleteStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, _ := middleware.GetScopeFromContext(c)

	if err := h.storeService.DeleteStore(c.Request.Context(), scope, c.Param("storeID")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage stores"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		default:
			logger.Error("Failed to delete store", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
