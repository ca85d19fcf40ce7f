package domain

// StoreSummary holds the derived totals for a single store. Balance is always
// TotalIncome - TotalExpense; all arithmetic is exact integer rupiah.
type StoreSummary struct {
	StoreID      string `json:"storeID"`
	Name         string `json:"name"`
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
	Balance      int64  `json:"balance"`
}

// FinancialSummary holds the derived totals over a transaction snapshot,
// globally and per store. The global totals equal the sums of the per-store
// totals exactly.
type FinancialSummary struct {
	TotalIncome  int64          `json:"totalIncome"`
	TotalExpense int64          `json:"totalExpense"`
	Balance      int64          `json:"balance"`
	Stores       []StoreSummary `json:"stores"`
}

// Granularity selects the bucketing period for analytics series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// IsValid reports whether g is one of the four supported granularities.
func (g Granularity) IsValid() bool {
	switch g {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// PeriodBucket is a time-windowed aggregate of income/expense/net used for
// analytics. PeriodKey is YYYY-MM-DD for daily and weekly (week-start date),
// YYYY-MM for monthly and YYYY for yearly; lexicographic order of the keys is
// chronological for all four formats.
type PeriodBucket struct {
	PeriodKey string `json:"periodKey"`
	Income    int64  `json:"income"`
	Expense   int64  `json:"expense"`
	Net       int64  `json:"net"`
}

// PeriodTotals sums a bucket series across all buckets.
type PeriodTotals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}
