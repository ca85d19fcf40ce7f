package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/google/uuid"
)

type storeService struct {
	BaseService
	storeRepo portsrepo.StoreRepository
}

// NewStoreService creates the store metadata service.
func NewStoreService(storeRepo portsrepo.StoreRepository) portssvc.StoreSvcFacade {
	return &storeService{storeRepo: storeRepo}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

func (s *storeService) CreateStore(ctx context.Context, scope domain.AccessScope, req dto.CreateStoreRequest, creatorUserID string) (*domain.Store, error) {
	if !scope.CanManageStores() {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	store := domain.Store{
		StoreID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.storeRepo.SaveStore(ctx, store); err != nil {
		s.LogError(ctx, err, "failed to create store", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "store created", slog.String("store_id", store.StoreID), slog.String("name", store.Name))
	return &store, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, scope domain.AccessScope, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if scope.Role != domain.RoleAdmin && store.Name != scope.StoreName {
		// A scoped caller must not learn whether other stores exist.
		return nil, apperrors.ErrNotFound
	}
	return store, nil
}

// ListStores returns the scope-visible stores plus the store names the scope
// may attribute new transactions to. Both sets come from one snapshot so the
// picker never offers a store the list view hides.
func (s *storeService) ListStores(ctx context.Context, scope domain.AccessScope) ([]domain.Store, []string, error) {
	all, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list stores")
		return nil, nil, err
	}
	return scope.VisibleStores(all), scope.WritableStoreNames(all), nil
}

func (s *storeService) UpdateStore(ctx context.Context, scope domain.AccessScope, storeID string, req dto.UpdateStoreRequest, updaterUserID string) (*domain.Store, error) {
	if !scope.CanManageStores() {
		return nil, apperrors.ErrForbidden
	}

	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store.Name = req.Name
	store.Description = req.Description
	store.Address = req.Address
	store.Phone = req.Phone
	store.LastUpdatedAt = time.Now()
	store.LastUpdatedBy = updaterUserID

	if err := s.storeRepo.UpdateStore(ctx, *store); err != nil {
		s.LogError(ctx, err, "failed to update store", slog.String("store_id", storeID))
		return nil, err
	}
	return store, nil
}

// DeleteStore removes the store record only. Transactions referencing the
// store's name survive and keep aggregating under that name.
func (s *storeService) DeleteStore(ctx context.Context, scope domain.AccessScope, storeID string) error {
	if !scope.CanManageStores() {
		return apperrors.ErrForbidden
	}
	if err := s.storeRepo.DeleteStore(ctx, storeID); err != nil {
		s.LogError(ctx, err, "failed to delete store", slog.String("store_id", storeID))
		return err
	}
	s.LogInfo(ctx, "store deleted", slog.String("store_id", storeID))
	return nil
}
