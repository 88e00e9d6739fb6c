package repositories

import (
	"context"
	"errors"

	"finledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TypeTotal is one row of the group-by-transaction-type aggregation.
type TypeTotal struct {
	TransactionType string
	TotalAmount     decimal.Decimal
}

// UserTotal is one row of the group-by-user aggregation.
type UserTotal struct {
	UserID      string
	TotalAmount decimal.Decimal
}

// TransactionRepository defines the interface for transaction-related
// database operations. Store failures are returned verbatim; absence is
// reported through ErrTransactionNotFound or a false result, never wrapped.
type TransactionRepository interface {
	// List retrieves a page of transactions in stable id order.
	List(ctx context.Context, offset, limit int) ([]models.Transaction, error)

	// ListAboveAmount retrieves a page of transactions whose amount strictly
	// exceeds the threshold.
	ListAboveAmount(ctx context.Context, threshold decimal.Decimal, offset, limit int) ([]models.Transaction, error)

	// GetByID retrieves a transaction by its surrogate key.
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)

	// Create inserts a new transaction; the store assigns its ID.
	Create(ctx context.Context, tx *models.Transaction) error

	// Save writes a full transaction row back to the store.
	Save(ctx context.Context, tx *models.Transaction) error

	// Delete removes a transaction permanently. The bool reports whether a
	// row existed.
	Delete(ctx context.Context, id uint) (bool, error)

	// SumByType sums amounts grouped by transaction type over the whole table.
	SumByType(ctx context.Context) ([]TypeTotal, error)

	// SumByUser sums amounts grouped by owning user over the whole table.
	SumByUser(ctx context.Context) ([]UserTotal, error)
}
