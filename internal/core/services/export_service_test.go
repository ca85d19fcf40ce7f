package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/core/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockStoreRepo *MockStoreRepository
	service       portssvc.ExportSvcFacade
	adminScope    domain.AccessScope
	tokoAScope    domain.AccessScope
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockStoreRepo = new(MockStoreRepository)
	suite.service = services.NewExportService(suite.mockTxnRepo, suite.mockStoreRepo, time.UTC)
	suite.adminScope = domain.AccessScope{Role: domain.RoleAdmin, Policy: domain.PolicyStrict}
	suite.tokoAScope = domain.AccessScope{Role: domain.RoleStoreAdmin, StoreName: "Toko A", Policy: domain.PolicyStrict}
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExport_AdminWorkbookCarriesRowsAndTotals() {
	ctx := context.Background()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 5_000_000, date),
		txn("Toko B", domain.Expense, 1_500_000, date),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	data, filename, err := suite.service.ExportTransactions(ctx, suite.adminScope, dto.ListTransactionsFilter{})

	suite.Require().NoError(err)
	suite.Contains(filename, "laporan-transaksi-")
	suite.Contains(filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	suite.Require().NoError(err)
	suite.Require().GreaterOrEqual(len(rows), 2)
	suite.Equal([]string{"Tanggal", "Toko", "Jenis", "Keterangan", "Jumlah"}, rows[0])
	suite.Equal("Toko A", rows[1][1])

	income, err := f.GetCellValue("Transaksi", "E5")
	suite.Require().NoError(err)
	suite.Equal("Rp 5.000.000", income)
}

func (suite *ExportServiceTestSuite) TestExport_StoreAdminFilterLimitedToOwnStore() {
	ctx := context.Background()
	stores := []domain.Store{{StoreID: "id-a", Name: "Toko A"}}
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", domain.Income, 5_000_000, date),
		txn("Toko B", domain.Income, 3_000_000, date),
	}
	suite.mockStoreRepo.On("ListStores", ctx).Return(stores, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	data, _, err := suite.service.ExportTransactions(ctx, suite.tokoAScope, dto.ListTransactionsFilter{})

	suite.Require().NoError(err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	suite.Require().NoError(err)
	suite.Require().GreaterOrEqual(len(rows), 2)
	suite.Equal("Toko A", rows[1][1])
	for _, row := range rows[1:] {
		if len(row) > 1 {
			suite.NotEqual("Toko B", row[1])
		}
	}
}

func (suite *ExportServiceTestSuite) TestExport_UnresolvedAssignedStoreRejected() {
	ctx := context.Background()
	stores := []domain.Store{{StoreID: "id-b", Name: "Toko B"}}
	suite.mockStoreRepo.On("ListStores", ctx).Return(stores, nil).Once()

	data, _, err := suite.service.ExportTransactions(ctx, suite.tokoAScope, dto.ListTransactionsFilter{})

	suite.Require().ErrorIs(err, apperrors.ErrScopeUnresolved)
	suite.Nil(data)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
