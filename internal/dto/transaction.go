package dto

import (
	"time"

	"github.com/bukukas/bukukas_backend/internal/apperrors"
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Transaction DTOs ---

// CreateTransactionRequest defines data for recording a new transaction.
// Amount is bound through decimal so fractional or out-of-range JSON numbers
// are rejected at the boundary instead of reaching the aggregation layer.
type CreateTransactionRequest struct {
	StoreName   string                 `json:"storeName" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Description string                 `json:"description" binding:"required"`
	Date        time.Time              `json:"date" binding:"required"`
}

// AmountRupiah validates and converts the bound amount into whole rupiah.
func (r CreateTransactionRequest) AmountRupiah() (int64, error) {
	if r.Amount.IsNegative() {
		return 0, apperrors.NewValidationFailedError("amount must not be negative")
	}
	if !r.Amount.IsInteger() {
		return 0, apperrors.NewValidationFailedError("amount must be a whole rupiah value")
	}
	if !r.Amount.BigInt().IsInt64() {
		return 0, apperrors.NewValidationFailedError("amount out of range")
	}
	return r.Amount.IntPart(), nil
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	StoreName     string                 `json:"storeName"`
	Amount        int64                  `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	Date          time.Time              `json:"date"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		StoreName:     t.StoreName,
		Amount:        t.Amount,
		Type:          t.Type,
		Description:   t.Description,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: list, NextToken: nextToken}
}

// ListTransactionsFilter captures the optional query filters for listing and
// exporting transactions.
type ListTransactionsFilter struct {
	StoreName string
	Type      domain.TransactionType
	Limit     int
	NextToken *string
}
