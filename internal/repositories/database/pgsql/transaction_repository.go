package pgsql

import (
	"context"
	"errors"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	"github.com/bukukas/bukukas_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.store_name, t.amount, t.type, t.description,
	t.date, t.created_at, t.created_by
FROM transactions t
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	query := FULL_TRANSACTION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, store_name, amount, type, description, date, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.StoreName,
		txn.Amount,
		txn.Type,
		txn.Description,
		txn.Date,
		txn.CreatedAt,
		txn.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+txn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `WHERE t.transaction_id = $1`
	txns, err := r.getTransactions(ctx, query, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &txns[0], nil
}

// ListTransactions returns the full log snapshot, newest first. A single
// query yields one consistent snapshot for the aggregation layer.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `ORDER BY t.created_at DESC, t.transaction_id DESC`
	return r.getTransactions(ctx, query)
}

// ListTransactionsPage returns one page of the log, newest first, with an
// opaque cursor encoding the last row's (created_at, id) position.
func (r *PgxTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	var txns []domain.Transaction
	var err error

	if nextToken != nil {
		createdAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token")
		}
		query := `WHERE (t.created_at, t.transaction_id) < ($1, $2) ORDER BY t.created_at DESC, t.transaction_id DESC LIMIT $3`
		txns, err = r.getTransactions(ctx, query, createdAt, lastID, limit)
	} else {
		query := `ORDER BY t.created_at DESC, t.transaction_id DESC LIMIT $1`
		txns, err = r.getTransactions(ctx, query, limit)
	}
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(txns) == limit {
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		newToken = &token
	}
	return txns, newToken, nil
}

// DeleteTransaction hard-deletes a record. Deleting an unknown ID succeeds as
// a no-op.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	_, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	return nil
}
