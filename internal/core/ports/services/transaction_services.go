package services

import (
	"context"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/bukukas/bukukas_backend/internal/dto"
)

// TransactionSvcFacade defines operations over the transaction log.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new record, rejecting
	// store names outside the scope's writable set.
	CreateTransaction(ctx context.Context, scope domain.AccessScope, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	// ListTransactions returns the scope-visible slice of the log, newest
	// first, with optional store/type filters and cursor pagination.
	ListTransactions(ctx context.Context, scope domain.AccessScope, filter dto.ListTransactionsFilter) ([]domain.Transaction, *string, error)
	// DeleteTransaction hard-deletes a record the scope can see. Deleting
	// an already-absent ID succeeds as a no-op.
	DeleteTransaction(ctx context.Context, scope domain.AccessScope, transactionID string) error
	// SeedSampleData inserts the demo transaction set as N independent
	// creates, sequentially and without atomicity across them; a partial
	// failure leaves the records created so far in place.
	SeedSampleData(ctx context.Context, scope domain.AccessScope, creatorUserID string) (int, error)
}
