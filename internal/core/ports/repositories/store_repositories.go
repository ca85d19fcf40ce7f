package repositories

import (
	"context"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// StoreReader defines read operations for store metadata.
type StoreReader interface {
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)
	// ListStores returns the full store snapshot, sorted by name.
	ListStores(ctx context.Context) ([]domain.Store, error)
}

// StoreWriter defines write operations for store metadata. DeleteStore does
// not cascade to transactions referencing the store's name.
type StoreWriter interface {
	SaveStore(ctx context.Context, store domain.Store) error
	UpdateStore(ctx context.Context, store domain.Store) error
	DeleteStore(ctx context.Context, storeID string) error
}

// StoreRepository combines read and write operations for stores.
type StoreRepository interface {
	StoreReader
	StoreWriter
}
