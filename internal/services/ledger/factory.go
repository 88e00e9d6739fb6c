package ledger

import (
	"time"

	"finledger/internal/models"
)

// factory builds transaction records from requests. It is the only place
// where record timestamps are assigned; the clock is injected so the
// construction and merge rules stay deterministic under test.
type factory struct {
	now func() time.Time
}

func newFactory(now func() time.Time) *factory {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &factory{now: now}
}

// New builds a fresh record from a creation request. The store assigns the ID
// on insert; CreatedAt and UpdatedAt start out equal.
func (f *factory) New(req AddOrUpdateTransactionRequest) models.Transaction {
	now := f.now()
	return models.Transaction{
		UserID:          req.UserID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// MergeUpdate produces the updated version of an existing record. ID and
// CreatedAt are carried over untouched; everything client-supplied is
// replaced and UpdatedAt moves to the current time.
func (f *factory) MergeUpdate(existing models.Transaction, req AddOrUpdateTransactionRequest) models.Transaction {
	return models.Transaction{
		ID:              existing.ID,
		UserID:          req.UserID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       f.now(),
	}
}
