package ledger

import (
	"testing"
	"time"

	"finledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tx := models.Transaction{
		ID:              3,
		UserID:          "User1",
		Amount:          decimal.NewFromFloat(12.34),
		TransactionType: models.TransactionTypeCredit,
		CreatedAt:       created,
		UpdatedAt:       created.Add(time.Minute),
	}
	original := tx

	resp := toResponse(tx)

	assert.Equal(t, tx.ID, resp.ID)
	assert.Equal(t, tx.UserID, resp.UserID)
	assert.True(t, resp.Amount.Equal(tx.Amount))
	assert.Equal(t, tx.TransactionType, resp.TransactionType)
	assert.Equal(t, tx.CreatedAt, resp.CreatedAt)
	assert.Equal(t, tx.UpdatedAt, resp.UpdatedAt)

	// projecting twice is stable and the input is never mutated
	assert.Equal(t, resp, toResponse(tx))
	assert.Equal(t, original, tx)
}

func TestToResponses(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, UserID: "User1", Amount: decimal.NewFromInt(1)},
		{ID: 2, UserID: "User2", Amount: decimal.NewFromInt(2)},
	}

	responses := toResponses(txs)

	assert.Len(t, responses, 2)
	assert.Equal(t, uint(1), responses[0].ID)
	assert.Equal(t, uint(2), responses[1].ID)

	assert.Empty(t, toResponses(nil))
}
