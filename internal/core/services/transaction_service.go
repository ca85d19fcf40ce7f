package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	portsrepo "github.com/bukukas/bukukas_backend/internal/core/ports/repositories"
	portssvc "github.com/bukukas/bukukas_backend/internal/core/ports/services"
	"github.com/bukukas/bukukas_backend/internal/dto"
	"github.com/bukukas/bukukas_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepository
	storeRepo portsrepo.StoreRepository
}

// NewTransactionService creates the transaction log service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, storeRepo portsrepo.StoreRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, storeRepo: storeRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new record. The store name must
// be inside the scope's writable set; admins may attribute to names with no
// store record yet.
func (s *transactionService) CreateTransaction(ctx context.Context, scope domain.AccessScope, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationFailedError("type must be income or expense")
	}
	amount, err := req.AmountRupiah()
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load stores for write check")
		return nil, err
	}
	if !scope.CanWriteStore(stores, req.StoreName) {
		return nil, apperrors.ErrForbidden
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		StoreName:     req.StoreName,
		Amount:        amount,
		Type:          req.Type,
		Description:   req.Description,
		Date:          req.Date,
		CreatedAt:     time.Now(),
		CreatedBy:     creatorUserID,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("store_name", req.StoreName))
		return nil, err
	}

	s.LogInfo(ctx, "transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("store_name", txn.StoreName),
		slog.String("type", string(txn.Type)),
		slog.Int64("amount", txn.Amount))
	return &txn, nil
}

// ListTransactions returns the scope-visible slice of the log, newest first.
// Unfiltered full-visibility reads page straight off the database cursor;
// filtered or store-scoped reads work over one snapshot so the page boundary
// and the visibility cut come from the same view of the log.
func (s *transactionService) ListTransactions(ctx context.Context, scope domain.AccessScope, filter dto.ListTransactionsFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	seesAll := scope.Role == domain.RoleAdmin || scope.Policy == domain.PolicyRelaxed
	if seesAll && filter.StoreName == "" && filter.Type == "" {
		return s.txnRepo.ListTransactionsPage(ctx, limit, filter.NextToken)
	}

	snapshot, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, nil, err
	}

	visible := scope.VisibleTransactions(snapshot)
	filtered := make([]domain.Transaction, 0, len(visible))
	for _, txn := range visible {
		if filter.StoreName != "" && txn.StoreName != filter.StoreName {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		filtered = append(filtered, txn)
	}

	return paginateSnapshot(filtered, limit, filter.NextToken)
}

// paginateSnapshot applies cursor pagination over an already-ordered
// (createdAt desc, id desc) slice, using the same token format as the
// database cursor.
func paginateSnapshot(txns []domain.Transaction, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	start := 0
	if nextToken != nil {
		tokCreatedAt, tokID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token")
		}
		for start < len(txns) {
			t := txns[start]
			if t.CreatedAt.Before(tokCreatedAt) || (t.CreatedAt.Equal(tokCreatedAt) && t.TransactionID < tokID) {
				break
			}
			start++
		}
	}

	end := start + limit
	if end > len(txns) {
		end = len(txns)
	}
	page := txns[start:end]

	var newToken *string
	if end < len(txns) && len(page) > 0 {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		newToken = &token
	}
	return page, newToken, nil
}

// DeleteTransaction hard-deletes a record the scope can see. Deleting an ID
// that no longer exists succeeds as a no-op, so a double-click on the delete
// button never surfaces an error.
func (s *transactionService) DeleteTransaction(ctx context.Context, scope domain.AccessScope, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "failed to load transaction for delete", slog.String("transaction_id", transactionID))
		return err
	}

	if scope.Role != domain.RoleAdmin && scope.Policy == domain.PolicyStrict && txn.StoreName != scope.StoreName {
		return apperrors.ErrForbidden
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// seedRecord describes one demo transaction relative to seeding time, so the
// demo data always lands inside the reporting windows.
type seedRecord struct {
	store       string
	txnType     domain.TransactionType
	amount      int64
	description string
	daysAgo     int
}

var sampleRecords = []seedRecord{
	{"Toko A", domain.Income, 5_000_000, "Penjualan harian", 2},
	{"Toko A", domain.Income, 1_500_000, "Penjualan online", 5},
	{"Toko A", domain.Expense, 750_000, "Pembelian stok", 4},
	{"Toko A", domain.Expense, 250_000, "Listrik dan air", 10},
	{"Toko B", domain.Income, 3_000_000, "Penjualan harian", 1},
	{"Toko B", domain.Income, 2_000_000, "Pesanan grosir", 8},
	{"Toko B", domain.Expense, 1_200_000, "Gaji karyawan", 7},
	{"Toko B", domain.Expense, 300_000, "Sewa etalase", 14},
	{"Toko C", domain.Income, 4_500_000, "Penjualan harian", 3},
	{"Toko C", domain.Income, 800_000, "Komisi titipan", 12},
	{"Toko C", domain.Expense, 2_000_000, "Pembelian stok", 6},
	{"Toko C", domain.Expense, 450_000, "Ongkos kirim", 9},
}

// SeedSampleData inserts the demo transaction set. Each record is an
// independent create, sequential and without atomicity across them; a partial
// failure leaves earlier records in place and reports how many made it in.
func (s *transactionService) SeedSampleData(ctx context.Context, scope domain.AccessScope, creatorUserID string) (int, error) {
	if scope.Role != domain.RoleAdmin {
		return 0, apperrors.ErrForbidden
	}

	now := time.Now()
	created := 0
	for _, rec := range sampleRecords {
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			StoreName:     rec.store,
			Amount:        rec.amount,
			Type:          rec.txnType,
			Description:   rec.description,
			Date:          now.AddDate(0, 0, -rec.daysAgo),
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
		}
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "sample data seeding stopped partway", slog.Int("created", created))
			return created, err
		}
		created++
	}

	s.LogInfo(ctx, "sample data seeded", slog.Int("created", created))
	return created, nil
}
