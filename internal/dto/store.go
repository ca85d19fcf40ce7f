package dto

import (
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// --- Store DTOs ---

// CreateStoreRequest defines data for registering a new store.
type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// UpdateStoreRequest defines data for editing store metadata.
type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// StoreResponse defines data returned for a store.
type StoreResponse struct {
	StoreID       string    `json:"storeID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToStoreResponse converts domain.Store to DTO.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		StoreID:       s.StoreID,
		Name:          s.Name,
		Description:   s.Description,
		Address:       s.Address,
		Phone:         s.Phone,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ListStoresResponse wraps the stores visible to the caller plus the store
// names the caller may attribute new transactions to (the add-transaction
// picker set).
type ListStoresResponse struct {
	Stores        []StoreResponse `json:"stores"`
	WritableNames []string        `json:"writableNames"`
}

// ToListStoresResponse converts visible stores and writable names to DTO.
func ToListStoresResponse(stores []domain.Store, writableNames []string) ListStoresResponse {
	list := make([]StoreResponse, len(stores))
	for i, s := range stores {
		list[i] = ToStoreResponse(&s)
	}
	return ListStoresResponse{Stores: list, WritableNames: writableNames}
}
