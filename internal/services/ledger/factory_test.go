package ledger

import (
	"testing"
	"time"

	"finledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFactory_New(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newFactory(fixedClock(now))

	req := AddOrUpdateTransactionRequest{
		UserID:          "User1",
		Amount:          decimal.NewFromInt(1000),
		TransactionType: models.TransactionTypeDebit,
	}

	tx := f.New(req)

	assert.Zero(t, tx.ID)
	assert.Equal(t, "User1", tx.UserID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, models.TransactionTypeDebit, tx.TransactionType)
	assert.Equal(t, now, tx.CreatedAt)
	assert.Equal(t, tx.CreatedAt, tx.UpdatedAt)
}

func TestFactory_New_AcceptsZeroAndNegativeAmounts(t *testing.T) {
	f := newFactory(nil)

	for _, amount := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-250),
	} {
		tx := f.New(AddOrUpdateTransactionRequest{
			UserID:          "User1",
			Amount:          amount,
			TransactionType: models.TransactionTypeCredit,
		})
		assert.True(t, tx.Amount.Equal(amount))
	}
}

func TestFactory_MergeUpdate(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)
	f := newFactory(fixedClock(updated))

	existing := models.Transaction{
		ID:              7,
		UserID:          "User1",
		Amount:          decimal.NewFromInt(1000),
		TransactionType: models.TransactionTypeDebit,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	req := AddOrUpdateTransactionRequest{
		UserID:          "User2",
		Amount:          decimal.NewFromInt(500),
		TransactionType: models.TransactionTypeCredit,
	}

	merged := f.MergeUpdate(existing, req)

	assert.Equal(t, uint(7), merged.ID)
	assert.Equal(t, created, merged.CreatedAt)
	assert.Equal(t, updated, merged.UpdatedAt)
	assert.True(t, merged.UpdatedAt.After(merged.CreatedAt) || merged.UpdatedAt.Equal(merged.CreatedAt))
	assert.Equal(t, "User2", merged.UserID)
	assert.True(t, merged.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, models.TransactionTypeCredit, merged.TransactionType)

	// the input record is left untouched
	assert.Equal(t, "User1", existing.UserID)
	assert.Equal(t, created, existing.UpdatedAt)
}
