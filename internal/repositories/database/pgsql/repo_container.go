package pgsql

import (
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires all pgx-backed repositories against one pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:        newPgxUserRepository(pool),
		Store:       newPgxStoreRepository(pool),
		Transaction: newPgxTransactionRepository(pool),
	}
}
