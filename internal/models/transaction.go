package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeDebit  = "Debit"
	TransactionTypeCredit = "Credit"
)

// Transaction is a single ledger record. Amount is a signed decimal with no
// currency attached; zero and negative values are stored as-is. CreatedAt is
// set once when the record is built and never changes afterwards.
type Transaction struct {
	ID              uint            `gorm:"primarykey"`
	UserID          string          `gorm:"size:255;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TransactionType string          `gorm:"size:32;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
