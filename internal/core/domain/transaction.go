package domain

import "time"

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the two recognised transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single dated income or expense record attributed to
// one store. Transactions are immutable once created; they are removed by hard
// delete only.
//
// StoreName is the join key against Store.Name. The persisted shape keeps the
// name-keyed reference for compatibility with the existing records; resolution
// to store IDs happens per snapshot in the aggregation layer.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"` // Primary key (UUID)
	StoreName     string          `json:"storeName" db:"store_name"`         // Join key -> stores.name (not the ID)
	Amount        int64           `json:"amount" db:"amount"`                // Whole rupiah, never negative
	Type          TransactionType `json:"type" db:"type"`
	Description   string          `json:"description" db:"description"`
	Date          time.Time       `json:"date" db:"date"`            // Business date, user supplied
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"` // Server assigned, default ordering key
	CreatedBy     string          `json:"createdBy" db:"created_by"` // UserID reference
}
