package services

import (
	"context"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/bukukas/bukukas_backend/internal/dto"
)

// StoreSvcFacade defines operations for store metadata. All writes are
// admin-only; reads are filtered through the caller's access scope.
type StoreSvcFacade interface {
	CreateStore(ctx context.Context, scope domain.AccessScope, req dto.CreateStoreRequest, creatorUserID string) (*domain.Store, error)
	GetStoreByID(ctx context.Context, scope domain.AccessScope, storeID string) (*domain.Store, error)
	// ListStores returns the stores visible to the scope plus the store
	// names the scope may attribute new transactions to.
	ListStores(ctx context.Context, scope domain.AccessScope) ([]domain.Store, []string, error)
	UpdateStore(ctx context.Context, scope domain.AccessScope, storeID string, req dto.UpdateStoreRequest, updaterUserID string) (*domain.Store, error)
	// DeleteStore removes the store record only; transactions referencing
	// its name are left untouched.
	DeleteStore(ctx context.Context, scope domain.AccessScope, storeID string) error
}
