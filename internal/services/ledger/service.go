// Package ledger implements the transaction record lifecycle: paginated and
// threshold-filtered reads, lookups, and create/update/delete through a
// construction-and-merge factory that keeps identity and creation time
// immutable.
package ledger

import (
	"context"
	"errors"
	"time"

	"finledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// Service exposes the ledger operations. Every method performs exactly one
// unit of work against the store, honors context cancellation, and never
// retries. Absence is a normal outcome (sentinel error or false flag); store
// failures propagate unmodified.
type Service interface {
	GetTransactions(ctx context.Context, page, limit int) ([]TransactionResponse, error)
	GetHighVolumeTransactions(ctx context.Context, threshold decimal.Decimal, page, limit int) ([]TransactionResponse, error)
	GetTransactionByID(ctx context.Context, id uint) (*TransactionResponse, error)
	AddTransaction(ctx context.Context, req AddOrUpdateTransactionRequest) (uint, error)
	UpdateTransaction(ctx context.Context, id uint, req AddOrUpdateTransactionRequest) (bool, error)
	DeleteTransaction(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo    repositories.TransactionRepository
	factory *factory
}

// NewService creates a new ledger service. The clock may be nil, in which
// case UTC wall time is used.
func NewService(repo repositories.TransactionRepository, now func() time.Time) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{
		repo:    repo,
		factory: newFactory(now),
	}
}

func (s *service) GetTransactions(ctx context.Context, page, limit int) ([]TransactionResponse, error) {
	transactions, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return toResponses(transactions), nil
}

func (s *service) GetHighVolumeTransactions(ctx context.Context, threshold decimal.Decimal, page, limit int) ([]TransactionResponse, error) {
	transactions, err := s.repo.ListAboveAmount(ctx, threshold, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return toResponses(transactions), nil
}

func (s *service) GetTransactionByID(ctx context.Context, id uint) (*TransactionResponse, error) {
	transaction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	resp := toResponse(*transaction)
	return &resp, nil
}

func (s *service) AddTransaction(ctx context.Context, req AddOrUpdateTransactionRequest) (uint, error) {
	transaction := s.factory.New(req)
	if err := s.repo.Create(ctx, &transaction); err != nil {
		return 0, err
	}
	return transaction.ID, nil
}

// UpdateTransaction is an explicit read-modify-write: the current row is
// read, merged with the request and written back as one row. Concurrent
// updates on the same id resolve last-write-wins at the store.
func (s *service) UpdateTransaction(ctx context.Context, id uint, req AddOrUpdateTransactionRequest) (bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return false, nil
		}
		return false, err
	}

	merged := s.factory.MergeUpdate(*existing, req)
	if err := s.repo.Save(ctx, &merged); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) DeleteTransaction(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}
