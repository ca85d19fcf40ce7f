package accounting

import (
	"sort"
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// This package is the pure derivation layer: every function here is a total
// function over an immutable transaction snapshot, with no side effects and no
// dependency on wall-clock time. Callers always pass one consistent snapshot,
// never an incremental diff, so a single computation is atomic with respect to
// its input.

// Summarize folds a transaction snapshot into global and per-store totals.
// Stores are keyed by name (the persisted join key) and returned sorted by
// name; the store ID falls back to the name when no registry is supplied.
// Empty input yields the zero summary.
func Summarize(txns []domain.Transaction) domain.FinancialSummary {
	return SummarizeWithStores(txns, nil)
}

// SummarizeWithStores is the store-seeded variant of Summarize: every
// registered store gets a summary row even with zero transactions, and store
// names are resolved to store IDs through an index built once per snapshot.
// A transaction whose store name matches no registered store still aggregates
// under its own name.
func SummarizeWithStores(txns []domain.Transaction, stores []domain.Store) domain.FinancialSummary {
	byName := make(map[string]*domain.StoreSummary, len(stores))
	for _, store := range stores {
		if _, ok := byName[store.Name]; ok {
			continue // duplicate names share one bucket, first registration wins the ID
		}
		byName[store.Name] = &domain.StoreSummary{StoreID: store.StoreID, Name: store.Name}
	}

	for _, txn := range txns {
		bucket, ok := byName[txn.StoreName]
		if !ok {
			bucket = &domain.StoreSummary{StoreID: txn.StoreName, Name: txn.StoreName}
			byName[txn.StoreName] = bucket
		}
		if txn.Type == domain.Income {
			bucket.TotalIncome += txn.Amount
		} else {
			bucket.TotalExpense += txn.Amount
		}
		bucket.Balance = bucket.TotalIncome - bucket.TotalExpense
	}

	summary := domain.FinancialSummary{Stores: make([]domain.StoreSummary, 0, len(byName))}
	for _, bucket := range byName {
		summary.TotalIncome += bucket.TotalIncome
		summary.TotalExpense += bucket.TotalExpense
		summary.Stores = append(summary.Stores, *bucket)
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	// Map iteration order is not deterministic; the contract is sort-by-name.
	sort.Slice(summary.Stores, func(i, j int) bool {
		return summary.Stores[i].Name < summary.Stores[j].Name
	})
	return summary
}

// windowStart returns the inclusive lower bound of the reporting window for a
// granularity, relative to the reference instant.
func windowStart(g domain.Granularity, now time.Time) time.Time {
	switch g {
	case domain.Daily:
		return now.AddDate(0, 0, -30)
	case domain.Weekly:
		return now.AddDate(0, 0, -12*7)
	case domain.Monthly:
		// First of the month, twelve months back.
		return time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, now.Location())
	case domain.Yearly:
		// January 1st, five years back.
		return time.Date(now.Year()-5, time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return now
}

// bucketKey derives the period key for a transaction date. Keys are computed
// in the reference instant's location so the bucketing timezone is pinned by
// the caller rather than by ambient locale.
func bucketKey(g domain.Granularity, date time.Time, loc *time.Location) string {
	local := date.In(loc)
	switch g {
	case domain.Daily:
		return local.Format("2006-01-02")
	case domain.Weekly:
		// The Sunday on or before the transaction date.
		weekStart := local.AddDate(0, 0, -int(local.Weekday()))
		return weekStart.Format("2006-01-02")
	case domain.Monthly:
		return local.Format("2006-01")
	case domain.Yearly:
		return local.Format("2006")
	}
	return ""
}

// BucketByPeriod groups the snapshot's transactions into period buckets of the
// given granularity, restricted to the fixed reporting window ending at the
// reference instant: last 30 days (daily), last 12 weeks (weekly), last 12
// months from the 1st (monthly) or last 5 years from Jan 1 (yearly). Both
// window boundaries are inclusive. Buckets come back ascending by period key.
func BucketByPeriod(txns []domain.Transaction, g domain.Granularity, referenceNow time.Time) []domain.PeriodBucket {
	start := windowStart(g, referenceNow)
	loc := referenceNow.Location()

	grouped := make(map[string]*domain.PeriodBucket)
	for _, txn := range txns {
		if txn.Date.Before(start) || txn.Date.After(referenceNow) {
			continue
		}
		key := bucketKey(g, txn.Date, loc)
		bucket, ok := grouped[key]
		if !ok {
			bucket = &domain.PeriodBucket{PeriodKey: key}
			grouped[key] = bucket
		}
		if txn.Type == domain.Income {
			bucket.Income += txn.Amount
		} else {
			bucket.Expense += txn.Amount
		}
		bucket.Net = bucket.Income - bucket.Expense
	}

	buckets := make([]domain.PeriodBucket, 0, len(grouped))
	for _, bucket := range grouped {
		buckets = append(buckets, *bucket)
	}
	// Lexicographic key order is chronological for all four key formats.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].PeriodKey < buckets[j].PeriodKey
	})
	return buckets
}

// TotalsByType sums a bucket series across all buckets. For the same
// window-restricted snapshot, the totals match Summarize's global totals.
func TotalsByType(buckets []domain.PeriodBucket) domain.PeriodTotals {
	var totals domain.PeriodTotals
	for _, bucket := range buckets {
		totals.Income += bucket.Income
		totals.Expense += bucket.Expense
		totals.Net += bucket.Net
	}
	return totals
}

// FilterByType restricts a snapshot to one transaction type. An invalid or
// empty filter returns the snapshot unchanged.
func FilterByType(txns []domain.Transaction, t domain.TransactionType) []domain.Transaction {
	if !t.IsValid() {
		return txns
	}
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Type == t {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}
