package services

import (
	"context"
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/bukukas/bukukas_backend/internal/dto"
)

// ReportingSvcFacade defines the derived-report operations. Each call reads
// one consistent snapshot and feeds it to the pure aggregation functions.
type ReportingSvcFacade interface {
	// Summary computes the scope-visible financial summary. The boolean is
	// the unresolved-scope signal for store-admins whose assigned store
	// matches no registered store.
	Summary(ctx context.Context, scope domain.AccessScope) (domain.FinancialSummary, bool, error)
	// Analytics computes the period-bucketed series and its totals.
	// Admin only. referenceNow pins the reporting window and bucketing
	// timezone; callers outside tests pass the service clock's now.
	Analytics(ctx context.Context, scope domain.AccessScope, g domain.Granularity, typeFilter domain.TransactionType, referenceNow time.Time) ([]domain.PeriodBucket, domain.PeriodTotals, error)
	// Now returns the current instant in the pinned reporting timezone.
	Now() time.Time
}

// ExportSvcFacade defines the report-export operation: a spreadsheet of the
// already-filtered, already-summarized transaction table.
type ExportSvcFacade interface {
	// ExportTransactions renders the scope- and filter-restricted
	// transaction table plus its income/expense/balance summary to an
	// xlsx workbook, returned as raw bytes with a suggested filename.
	ExportTransactions(ctx context.Context, scope domain.AccessScope, filter dto.ListTransactionsFilter) ([]byte, string, error)
}
