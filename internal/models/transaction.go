package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/luminark/holdings/internal/errors"
)

// TransactionType is buy or sell.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// Transaction records a buy or sell against an investment. Transactions are
// append-only: created once, never updated or deleted.
type Transaction struct {
	ID           string `json:"id"`
	InvestmentID string `json:"investmentId"`
	// InvestmentName is copied from the investment at creation time.
	InvestmentName string          `json:"investmentName,omitempty"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// TransactionFilter represents filters for querying transactions
type TransactionFilter struct {
	InvestmentID string
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.InvestmentID) == "" {
		return &apperrors.ErrValidation{Field: "investmentId", Message: "is required"}
	}
	if t.Type != TransactionBuy && t.Type != TransactionSell {
		return &apperrors.ErrValidation{Field: "type", Message: "must be buy or sell"}
	}
	if !t.Amount.IsPositive() {
		return &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if t.Price.IsNegative() {
		return &apperrors.ErrValidation{Field: "price", Message: "must be non-negative"}
	}
	return nil
}

// PreSave normalizes the type, computes Total and validates.
func (t *Transaction) PreSave() error {
	t.Type = TransactionType(strings.ToLower(strings.TrimSpace(string(t.Type))))
	if err := t.Validate(); err != nil {
		return err
	}
	t.Total = t.Amount.Mul(t.Price)
	return nil
}
