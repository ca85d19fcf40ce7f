package repositories

import (
	"context"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// TransactionReader defines read operations over the transaction log.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns one consistent snapshot of the full log,
	// ordered by createdAt descending. The aggregation layer is always fed
	// a snapshot from a single call, never a partially-updated view.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// ListTransactionsPage returns a page of the log ordered by createdAt
	// descending, with an opaque cursor for the next page.
	ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations over the transaction log.
// Transactions are immutable: there is no update.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction hard-deletes a record. Deleting an unknown ID is a
	// no-op success, not an error.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines read and write operations for transactions.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
