package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/utils"
	"github.com/bukukas/bukukas_backend/internal/utils/accounting"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Transaksi"

type exportService struct {
	BaseService
	txnRepo   portsrepo.TransactionReader
	storeRepo portsrepo.StoreReader
	loc       *time.Location
}

// NewExportService creates the spreadsheet export service.
func NewExportService(txnRepo portsrepo.TransactionReader, storeRepo portsrepo.StoreReader, loc *time.Location) portssvc.ExportSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &exportService{txnRepo: txnRepo, storeRepo: storeRepo, loc: loc}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// ExportTransactions renders the scope- and filter-restricted transaction
// table plus its income/expense/balance summary to an xlsx workbook. The
// export always covers the full filtered set, never one page of it.
func (s *exportService) ExportTransactions(ctx context.Context, scope domain.AccessScope, filter dto.ListTransactionsFilter) ([]byte, string, error) {
	if scope.Role == domain.RoleStoreAdmin && scope.Policy == domain.PolicyStrict {
		stores, err := s.storeRepo.ListStores(ctx)
		if err != nil {
			s.LogError(ctx, err, "failed to load stores for export")
			return nil, "", err
		}
		if !scope.AssignedStoreResolved(stores) {
			return nil, "", apperrors.ErrScopeUnresolved
		}
	}

	snapshot, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for export")
		return nil, "", err
	}

	visible := scope.VisibleTransactions(snapshot)
	rows := make([]domain.Transaction, 0, len(visible))
	for _, txn := range visible {
		if filter.StoreName != "" && txn.StoreName != filter.StoreName {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		rows = append(rows, txn)
	}
	summary := accounting.Summarize(rows)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	f.SetCellValue(exportSheet, "A1", "Tanggal")
	f.SetCellValue(exportSheet, "B1", "Toko")
	f.SetCellValue(exportSheet, "C1", "Jenis")
	f.SetCellValue(exportSheet, "D1", "Keterangan")
	f.SetCellValue(exportSheet, "E1", "Jumlah")

	for i, txn := range rows {
		rowNo := i + 2
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(rowNo), txn.Date.In(s.loc).Format("2006-01-02"))
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(rowNo), txn.StoreName)
		f.SetCellValue(exportSheet, "C"+fmt.Sprint(rowNo), string(txn.Type))
		f.SetCellValue(exportSheet, "D"+fmt.Sprint(rowNo), txn.Description)
		f.SetCellValue(exportSheet, "E"+fmt.Sprint(rowNo), utils.FormatRupiah(txn.Amount))
	}

	summaryRow := len(rows) + 3
	f.SetCellValue(exportSheet, "D"+fmt.Sprint(summaryRow), "Total Pemasukan")
	f.SetCellValue(exportSheet, "E"+fmt.Sprint(summaryRow), utils.FormatRupiah(summary.TotalIncome))
	f.SetCellValue(exportSheet, "D"+fmt.Sprint(summaryRow+1), "Total Pengeluaran")
	f.SetCellValue(exportSheet, "E"+fmt.Sprint(summaryRow+1), utils.FormatRupiah(summary.TotalExpense))
	f.SetCellValue(exportSheet, "D"+fmt.Sprint(summaryRow+2), "Saldo")
	f.SetCellValue(exportSheet, "E"+fmt.Sprint(summaryRow+2), utils.FormatRupiah(summary.Balance))

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "failed to render export workbook")
		return nil, "", err
	}

	filename := "laporan-transaksi-" + time.Now().In(s.loc).Format("20060102-150405") + ".xlsx"
	s.LogInfo(ctx, "transactions exported",
		slog.Int("rows", len(rows)),
		slog.String("filename", filename))
	return buf.Bytes(), filename, nil
}
