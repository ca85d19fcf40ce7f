package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	txnRepo   portsrepo.TransactionReader
	storeRepo portsrepo.StoreReader
	loc       *time.Location
}

// NewReportingService creates the derived-report service. loc pins the
// timezone in which analytics bucket keys are derived.
func NewReportingService(txnRepo portsrepo.TransactionReader, storeRepo portsrepo.StoreReader, loc *time.Location) portssvc.ReportingSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingService{txnRepo: txnRepo, storeRepo: storeRepo, loc: loc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Now returns the current instant in the pinned reporting timezone.
func (s *reportingService) Now() time.Time {
	return time.Now().In(s.loc)
}

// Summary computes the scope-visible financial summary from one snapshot of
// the log and the store registry. A strict store-admin whose assigned store
// matches no registered store gets the zero summary plus the unresolved flag;
// that state is surfaced to the user, not treated as an error.
func (s *reportingService) Summary(ctx context.Context, scope domain.AccessScope) (domain.FinancialSummary, bool, error) {
	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load stores for summary")
		return domain.FinancialSummary{}, false, err
	}

	unresolved := !scope.AssignedStoreResolved(stores)
	if unresolved && scope.Policy == domain.PolicyStrict {
		return domain.FinancialSummary{Stores: []domain.StoreSummary{}}, true, nil
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for summary")
		return domain.FinancialSummary{}, false, err
	}

	summary := accounting.SummarizeWithStores(
		scope.VisibleTransactions(txns),
		scope.VisibleStores(stores),
	)
	return summary, unresolved, nil
}

// Analytics computes the period-bucketed income/expense series and its
// totals. Admin only. referenceNow pins both the reporting window and the
// bucketing timezone.
func (s *reportingService) Analytics(ctx context.Context, scope domain.AccessScope, g domain.Granularity, typeFilter domain.TransactionType, referenceNow time.Time) ([]domain.PeriodBucket, domain.PeriodTotals, error) {
	if !scope.CanViewAnalytics() {
		return nil, domain.PeriodTotals{}, apperrors.ErrForbidden
	}
	if !g.IsValid() {
		return nil, domain.PeriodTotals{}, apperrors.NewValidationFailedError("granularity must be daily, weekly, monthly or yearly")
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for analytics")
		return nil, domain.PeriodTotals{}, err
	}

	filtered := accounting.FilterByType(txns, typeFilter)
	buckets := accounting.BucketByPeriod(filtered, g, referenceNow)
	totals := accounting.TotalsByType(buckets)

	s.LogDebug(ctx, "analytics computed",
		slog.String("granularity", string(g)),
		slog.Int("buckets", len(buckets)))
	return buckets, totals, nil
}
