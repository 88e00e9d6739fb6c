package ledger

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
)
