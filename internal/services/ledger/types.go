package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddOrUpdateTransactionRequest is the client-supplied part of a transaction.
// Amount deliberately carries no range validation: zero and negative amounts
// are accepted.
type AddOrUpdateTransactionRequest struct {
	UserID          string          `json:"user_id" validate:"required,max=255"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type" validate:"required,oneof=Debit Credit"`
}

// TransactionResponse is the transport representation of a stored transaction.
type TransactionResponse struct {
	ID              uint            `json:"id"`
	UserID          string          `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
