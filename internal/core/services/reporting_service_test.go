package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockStoreRepo *MockStoreRepository
	service       portssvc.ReportingSvcFacade
	adminScope    domain.AccessScope
	tokoAScope    domain.AccessScope
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockStoreRepo = new(MockStoreRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockStoreRepo, time.UTC)
	suite.adminScope = domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}
	suite.tokoAScope = domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}
}

func txn(store string, txnType domain.TransactionType, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: store + date.Format("20060102") + string(txnType),
		StoreName:     store,
		Amount:        amount,
		Type:          txnType,
		Date:          date,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestSummary_AdminCoversAllStores() {
	ctx := context.Background()
	stores := []domain.Store{
		{StoreID: "id-a", Name: "Toko A"},
		{StoreID: "id-b", Name: "Toko B"},
	}
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 5_000_000, date),
		txn("Toko A", domain.Expense, 1_000_000, date),
		txn("Toko B", domain.Income, 3_000_000, date),
		txn("Toko B", domain.Expense, 500_000, date),
	}

	suite.mockStoreRepo.On("ListStores", ctx).Return(stores, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	summary, unresolved, err := suite.service.Summary(ctx, suite.adminScope)

	suite.Require().NoError(err)
	suite.False(unresolved)
	suite.Equal(int64(8_000_000), summary.TotalIncome)
	suite.Equal(int64(1_500_000), summary.TotalExpense)
	suite.Equal(int64(6_500_000), summary.Balance)
	suite.Require().Len(summary.Stores, 2)
	suite.Equal("id-a", summary.Stores[0].StoreID)
}

func (suite *ReportingServiceTestSuite) TestSummary_StoreAdminSeesOnlyOwnStore() {
	ctx := context.Background()
	stores := []domain.Store{
		{StoreID: "id-a", Name: "Toko A"},
		{StoreID: "id-b", Name: "Toko B"},
	}
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 5_000_000, date),
		txn("Toko B", domain.Income, 3_000_000, date),
	}

	suite.mockStoreRepo.On("ListStores", ctx).Return(stores, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	summary, unresolved, err := suite.service.Summary(ctx, suite.tokoAScope)

	suite.Require().NoError(err)
	suite.False(unresolved)
	suite.Equal(int64(5_000_000), summary.TotalIncome)
	suite.Require().Len(summary.Stores, 1)
	suite.Equal("Toko A", summary.Stores[0].Name)
}

func (suite *ReportingServiceTestSuite) TestSummary_UnresolvedAssignedStoreYieldsEmptySummary() {
	ctx := context.Background()
	stores := []domain.Store{{StoreID: "id-b", Name: "Toko B"}}

	suite.mockStoreRepo.On("ListStores", ctx).Return(stores, nil).Once()

	summary, unresolved, err := suite.service.Summary(ctx, suite.tokoAScope)

	suite.Require().NoError(err)
	suite.True(unresolved)
	suite.Zero(summary.TotalIncome)
	suite.Zero(summary.TotalExpense)
	suite.Empty(summary.Stores)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ReportingServiceTestSuite) TestAnalytics_ForbiddenForStoreAdmin() {
	ctx := context.Background()

	buckets, _, err := suite.service.Analytics(ctx, suite.tokoAScope, domain.Monthly, "", time.Now())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(buckets)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ReportingServiceTestSuite) TestAnalytics_RejectsUnknownGranularity() {
	ctx := context.Background()

	buckets, _, err := suite.service.Analytics(ctx, suite.adminScope, domain.Granularity("hourly"), "", time.Now())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(buckets)
}

func (suite *ReportingServiceTestSuite) TestAnalytics_MonthlyBucketsAndTotals() {
	ctx := context.Background()
	referenceNow := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 2_000, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		txn("Toko A", domain.Expense, 500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	buckets, totals, err := suite.service.Analytics(ctx, suite.adminScope, domain.Monthly, "", referenceNow)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 2)
	suite.Equal("2026-01", buckets[0].PeriodKey)
	suite.Equal(int64(2_000), buckets[0].Income)
	suite.Equal("2026-02", buckets[1].PeriodKey)
	suite.Equal(int64(500), buckets[1].Expense)
	suite.Equal(int64(2_000), totals.Income)
	suite.Equal(int64(500), totals.Expense)
	suite.Equal(int64(1_500), totals.Net)
}

func (suite *ReportingServiceTestSuite) TestAnalytics_TypeFilterRestrictsSeries() {
	ctx := context.Background()
	referenceNow := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 2_000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		txn("Toko A", domain.Expense, 500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	buckets, totals, err := suite.service.Analytics(ctx, suite.adminScope, domain.Monthly, domain.Expense, referenceNow)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 1)
	suite.Zero(buckets[0].Income)
	suite.Equal(int64(500), buckets[0].Expense)
	suite.Equal(int64(-500), totals.Net)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
