package accounting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/bukukas/bukukas_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(store string, amount int64, txnType domain.TransactionType, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		StoreName:     store,
		Amount:        amount,
		Type:          txnType,
		Description:   "test entry",
		Date:          date,
		CreatedAt:     date,
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := accounting.Summarize(nil)

	assert.Equal(t, int64(0), summary.TotalIncome)
	assert.Equal(t, int64(0), summary.TotalExpense)
	assert.Equal(t, int64(0), summary.Balance)
	assert.Empty(t, summary.Stores)
}

func TestSummarize_EndToEndScenario(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", 5_000_000, domain.Income, date),
		txn("Toko A", 1_500_000, domain.Expense, date),
		txn("Toko B", 3_000_000, domain.Income, date),
	}

	summary := accounting.Summarize(txns)

	assert.Equal(t, int64(8_000_000), summary.TotalIncome)
	assert.Equal(t, int64(1_500_000), summary.TotalExpense)
	assert.Equal(t, int64(6_500_000), summary.Balance)

	require.Len(t, summary.Stores, 2)
	tokoA := summary.Stores[0]
	assert.Equal(t, "Toko A", tokoA.Name)
	assert.Equal(t, int64(5_000_000), tokoA.TotalIncome)
	assert.Equal(t, int64(1_500_000), tokoA.TotalExpense)
	assert.Equal(t, int64(3_500_000), tokoA.Balance)

	tokoB := summary.Stores[1]
	assert.Equal(t, "Toko B", tokoB.Name)
	assert.Equal(t, int64(3_000_000), tokoB.TotalIncome)
	assert.Equal(t, int64(0), tokoB.TotalExpense)
	assert.Equal(t, int64(3_000_000), tokoB.Balance)
}

func TestSummarize_SumConsistency(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))
	stores := []string{"Toko A", "Toko B", "Toko C", "Toko D"}

	var txns []domain.Transaction
	for i := 0; i < 200; i++ {
		txnType := domain.Income
		if rng.Intn(2) == 0 {
			txnType = domain.Expense
		}
		txns = append(txns, txn(stores[rng.Intn(len(stores))], int64(rng.Intn(1_000_000)), txnType, date))
	}

	summary := accounting.Summarize(txns)

	var income, expense int64
	for _, store := range summary.Stores {
		income += store.TotalIncome
		expense += store.TotalExpense
		assert.Equal(t, store.TotalIncome-store.TotalExpense, store.Balance)
	}
	assert.Equal(t, income, summary.TotalIncome)
	assert.Equal(t, expense, summary.TotalExpense)
	assert.Equal(t, summary.TotalIncome-summary.TotalExpense, summary.Balance)
}

func TestSummarize_OrderIndependence(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", 100, domain.Income, date),
		txn("Toko B", 200, domain.Expense, date),
		txn("Toko A", 300, domain.Expense, date),
		txn("Toko C", 400, domain.Income, date),
		txn("Toko B", 500, domain.Income, date),
	}

	expected := accounting.Summarize(txns)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, expected, accounting.Summarize(shuffled))
	}
}

func TestSummarize_Idempotence(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", 100, domain.Income, date),
		txn("Toko B", 200, domain.Expense, date),
	}

	first := accounting.Summarize(txns)
	second := accounting.Summarize(txns)

	assert.Equal(t, first, second)
}

func TestSummarizeWithStores_SeedsRegisteredStores(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	stores := []domain.Store{
		{StoreID: "id-a", Name: "Toko A"},
		{StoreID: "id-b", Name: "Toko B"},
	}
	txns := []domain.Transaction{
		txn("Toko A", 1000, domain.Income, date),
		txn("Toko Liar", 500, domain.Expense, date), // no store record
	}

	summary := accounting.SummarizeWithStores(txns, stores)

	require.Len(t, summary.Stores, 3)
	assert.Equal(t, "id-a", summary.Stores[0].StoreID)
	assert.Equal(t, int64(1000), summary.Stores[0].TotalIncome)

	// Registered store with no transactions still gets a zero row.
	assert.Equal(t, "Toko B", summary.Stores[1].Name)
	assert.Equal(t, int64(0), summary.Stores[1].TotalIncome)
	assert.Equal(t, int64(0), summary.Stores[1].Balance)

	// Unregistered name aggregates under itself, ID falls back to the name.
	assert.Equal(t, "Toko Liar", summary.Stores[2].Name)
	assert.Equal(t, "Toko Liar", summary.Stores[2].StoreID)
	assert.Equal(t, int64(-500), summary.Stores[2].Balance)
}

func TestBucketByPeriod_EmptyInput(t *testing.T) {
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	for _, g := range []domain.Granularity{domain.Daily, domain.Weekly, domain.Monthly, domain.Yearly} {
		assert.Empty(t, accounting.BucketByPeriod(nil, g, now), "granularity %s", g)
	}
}

func TestBucketByPeriod_MonthlyScenario(t *testing.T) {
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", 1000, domain.Income, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		txn("Toko A", 1000, domain.Income, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		txn("Toko A", 500, domain.Expense, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	buckets := accounting.BucketByPeriod(txns, domain.Monthly, now)

	require.Len(t, buckets, 2)
	assert.Equal(t, domain.PeriodBucket{PeriodKey: "2024-01", Income: 2000, Expense: 0, Net: 2000}, buckets[0])
	assert.Equal(t, domain.PeriodBucket{PeriodKey: "2024-02", Income: 0, Expense: 500, Net: -500}, buckets[1])
}

func TestBucketByPeriod_WindowBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity domain.Granularity
		start       time.Time
	}{
		{"daily last 30 days", domain.Daily, now.AddDate(0, 0, -30)},
		{"weekly last 12 weeks", domain.Weekly, now.AddDate(0, 0, -84)},
		{"monthly from 1st 12 months back", domain.Monthly, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"yearly from Jan 1 5 years back", domain.Yearly, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			included := []domain.Transaction{
				txn("Toko A", 100, domain.Income, tc.start), // exactly at the boundary
				txn("Toko A", 100, domain.Income, now),
			}
			excluded := []domain.Transaction{
				txn("Toko A", 999, domain.Income, tc.start.Add(-time.Second)),
				txn("Toko A", 999, domain.Income, now.Add(time.Second)),
			}

			buckets := accounting.BucketByPeriod(append(included, excluded...), tc.granularity, now)
			totals := accounting.TotalsByType(buckets)
			assert.Equal(t, int64(200), totals.Income)
		})
	}
}

func TestBucketByPeriod_CoverageMatchesSummarize(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(99))

	var txns []domain.Transaction
	for i := 0; i < 150; i++ {
		txnType := domain.Income
		if rng.Intn(2) == 0 {
			txnType = domain.Expense
		}
		// Dates spread over roughly two years around the window edges.
		date := now.AddDate(0, 0, -rng.Intn(730))
		txns = append(txns, txn("Toko A", int64(rng.Intn(10_000)), txnType, date))
	}

	for _, g := range []domain.Granularity{domain.Daily, domain.Weekly, domain.Monthly, domain.Yearly} {
		buckets := accounting.BucketByPeriod(txns, g, now)

		// Keys strictly ascending: every windowed transaction lands in
		// exactly one bucket.
		for i := 1; i < len(buckets); i++ {
			assert.Less(t, buckets[i-1].PeriodKey, buckets[i].PeriodKey)
		}

		var windowed []domain.Transaction
		start := now
		switch g {
		case domain.Daily:
			start = now.AddDate(0, 0, -30)
		case domain.Weekly:
			start = now.AddDate(0, 0, -84)
		case domain.Monthly:
			start = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
		case domain.Yearly:
			start = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		for _, candidate := range txns {
			if !candidate.Date.Before(start) && !candidate.Date.After(now) {
				windowed = append(windowed, candidate)
			}
		}

		summary := accounting.Summarize(windowed)
		totals := accounting.TotalsByType(buckets)
		assert.Equal(t, summary.TotalIncome, totals.Income, "granularity %s", g)
		assert.Equal(t, summary.TotalExpense, totals.Expense, "granularity %s", g)
		assert.Equal(t, summary.Balance, totals.Net, "granularity %s", g)
	}
}

func TestBucketByPeriod_WeeklyKeyIsSundayStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) // a Saturday
	wednesday := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	buckets := accounting.BucketByPeriod([]domain.Transaction{
		txn("Toko A", 100, domain.Income, wednesday),
	}, domain.Weekly, now)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-06-09", buckets[0].PeriodKey) // the Sunday before
}

func TestFilterByType(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn("Toko A", 100, domain.Income, date),
		txn("Toko A", 200, domain.Expense, date),
	}

	incomes := accounting.FilterByType(txns, domain.Income)
	require.Len(t, incomes, 1)
	assert.Equal(t, domain.Income, incomes[0].Type)

	// Unrecognised filter leaves the snapshot unchanged.
	assert.Len(t, accounting.FilterByType(txns, ""), 2)
}
