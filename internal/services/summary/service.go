// Package summary implements the read-only aggregation views over the full
// transaction set.
package summary

import (
	"context"

	"finledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// TypeSummary is the total amount recorded for one transaction type.
type TypeSummary struct {
	TransactionType string          `json:"transaction_type"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// UserSummary is the total amount recorded for one owning user.
type UserSummary struct {
	UserID      string          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Service exposes the two grouping queries. Both are full-table scans with
// store-native GROUP BY; a table with no rows yields an empty slice. Group
// order is not part of the contract.
type Service interface {
	ByTransactionType(ctx context.Context) ([]TypeSummary, error)
	ByUser(ctx context.Context) ([]UserSummary, error)
}

type service struct {
	repo repositories.TransactionRepository
}

// NewService creates a new summary service.
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) ByTransactionType(ctx context.Context) ([]TypeSummary, error) {
	totals, err := s.repo.SumByType(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]TypeSummary, len(totals))
	for i, t := range totals {
		summaries[i] = TypeSummary{
			TransactionType: t.TransactionType,
			TotalAmount:     t.TotalAmount,
		}
	}
	return summaries, nil
}

func (s *service) ByUser(ctx context.Context) ([]UserSummary, error) {
	totals, err := s.repo.SumByUser(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, len(totals))
	for i, t := range totals {
		summaries[i] = UserSummary{
			UserID:      t.UserID,
			TotalAmount: t.TotalAmount,
		}
	}
	return summaries, nil
}
