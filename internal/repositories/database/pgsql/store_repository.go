package pgsql

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStoreRepository struct {
	BaseRepository
}

func newPgxStoreRepository(pool *pgxpool.Pool) portsrepo.StoreRepository {
	return &PgxStoreRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStoreRepository implements portsrepo.StoreRepository
var _ portsrepo.StoreRepository = (*PgxStoreRepository)(nil)

var FULL_STORE_SELECT_QUERY = `
SELECT
	s.store_id, s.name, s.description, s.address, s.phone,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM stores s
`

func (r *PgxStoreRepository) getStores(ctx context.Context, filterQuery string, args ...any) ([]domain.Store, error) {
	query := FULL_STORE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stores", err)
	}
	defer rows.Close()
	stores, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Store])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Store{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect store rows", err)
	}
	return stores, nil
}

func (r *PgxStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	query := `
		INSERT INTO stores (
			store_id, name, description, address, phone,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		store.StoreID,
		store.Name,
		store.Description,
		store.Address,
		store.Phone,
		store.CreatedAt,
		store.CreatedBy,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("store with that name already exists")
		}
		return apperrors.NewAppError(500, "failed to save store "+store.StoreID, err)
	}
	return nil
}

func (r *PgxStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	stores, err := r.getStores(ctx, `WHERE s.store_id = $1`, storeID)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &stores[0], nil
}

func (r *PgxStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	return r.getStores(ctx, `ORDER BY s.name ASC`)
}

func (r *PgxStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	query := `
		UPDATE stores
		SET name = $1, description = $2, address = $3, phone = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE store_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		store.Name,
		store.Description,
		store.Address,
		store.Phone,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
		store.StoreID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("store with that name already exists")
		}
		return apperrors.NewAppError(500, "failed to update store "+store.StoreID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStore removes the store record only. Transactions referencing the
// store's name are left in place and keep aggregating under that name.
func (r *PgxStoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	query := `DELETE FROM stores WHERE store_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, storeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete store "+storeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
