package ledger

import (
	"finledger/internal/models"
)

// toResponse projects a stored record onto its transport shape. Pure
// field-by-field copy, no derived values.
func toResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func toResponses(txs []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = toResponse(tx)
	}
	return responses
}
