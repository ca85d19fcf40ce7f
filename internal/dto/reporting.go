package dto

import (
	"time"

	"github.com/bukukas/bukukas_backend/internal/core/domain"
)

// StoreSummaryResponse represents one store's derived totals.
type StoreSummaryResponse struct {
	StoreID      string `json:"storeID"`
	Name         string `json:"name"`
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
	Balance      int64  `json:"balance"`
}

// FinancialSummaryResponse represents the summary report response.
// UnresolvedScope is set when a store-admin's assigned store matches no
// registered store; the data set is empty in that case.
type FinancialSummaryResponse struct {
	AsOf            string                 `json:"asOf"`
	TotalIncome     int64                  `json:"totalIncome"`
	TotalExpense    int64                  `json:"totalExpense"`
	Balance         int64                  `json:"balance"`
	Stores          []StoreSummaryResponse `json:"stores"`
	UnresolvedScope bool                   `json:"unresolvedScope,omitempty"`
}

// ToFinancialSummaryResponse converts a domain summary to DTO.
func ToFinancialSummaryResponse(summary domain.FinancialSummary, asOf time.Time, unresolved bool) FinancialSummaryResponse {
	stores := make([]StoreSummaryResponse, len(summary.Stores))
	for i, s := range summary.Stores {
		stores[i] = StoreSummaryResponse{
			StoreID:      s.StoreID,
			Name:         s.Name,
			TotalIncome:  s.TotalIncome,
			TotalExpense: s.TotalExpense,
			Balance:      s.Balance,
		}
	}
	return FinancialSummaryResponse{
		AsOf:            asOf.Format(time.RFC3339),
		TotalIncome:     summary.TotalIncome,
		TotalExpense:    summary.TotalExpense,
		Balance:         summary.Balance,
		Stores:          stores,
		UnresolvedScope: unresolved,
	}
}

// PeriodBucketResponse represents one analytics bucket.
type PeriodBucketResponse struct {
	PeriodKey string `json:"periodKey"`
	Income    int64  `json:"income"`
	Expense   int64  `json:"expense"`
	Net       int64  `json:"net"`
}

// AnalyticsResponse represents the period-bucketed analytics response.
type AnalyticsResponse struct {
	Granularity domain.Granularity   `json:"granularity"`
	Buckets     []PeriodBucketResponse `json:"buckets"`
	Totals      struct {
		Income  int64 `json:"income"`
		Expense int64 `json:"expense"`
		Net     int64 `json:"net"`
	} `json:"totals"`
}

// ToAnalyticsResponse converts bucket series and totals to DTO.
func ToAnalyticsResponse(g domain.Granularity, buckets []domain.PeriodBucket, totals domain.PeriodTotals) AnalyticsResponse {
	response := AnalyticsResponse{
		Granularity: g,
		Buckets:     make([]PeriodBucketResponse, len(buckets)),
	}
	for i, b := range buckets {
		response.Buckets[i] = PeriodBucketResponse{
			PeriodKey: b.PeriodKey,
			Income:    b.Income,
			Expense:   b.Expense,
			Net:       b.Net,
		}
	}
	response.Totals.Income = totals.Income
	response.Totals.Expense = totals.Expense
	response.Totals.Net = totals.Net
	return response
}
