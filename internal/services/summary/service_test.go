package summary

import (
	"context"
	"errors"
	"testing"

	"finledger/internal/models"
	"finledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) List(ctx context.Context, offset, limit int) ([]models.Transaction, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListAboveAmount(ctx context.Context, threshold decimal.Decimal, offset, limit int) ([]models.Transaction, error) {
	args := m.Called(ctx, threshold, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SumByType(ctx context.Context) ([]repositories.TypeTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.TypeTotal), args.Error(1)
}

func (m *MockTransactionRepository) SumByUser(ctx context.Context) ([]repositories.UserTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.UserTotal), args.Error(1)
}

func TestService_ByTransactionType(t *testing.T) {
	t.Run("one row per type present, exact sums", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("SumByType", mock.Anything).Return([]repositories.TypeTotal{
			{TransactionType: models.TransactionTypeDebit, TotalAmount: decimal.NewFromInt(2001)},
			{TransactionType: models.TransactionTypeCredit, TotalAmount: decimal.NewFromInt(2000)},
		}, nil)

		svc := NewService(repo)
		got, err := svc.ByTransactionType(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)

		// group order is not contractual; compare as a map
		totals := make(map[string]decimal.Decimal, len(got))
		for _, s := range got {
			totals[s.TransactionType] = s.TotalAmount
		}
		assert.True(t, totals[models.TransactionTypeDebit].Equal(decimal.NewFromInt(2001)))
		assert.True(t, totals[models.TransactionTypeCredit].Equal(decimal.NewFromInt(2000)))
	})

	t.Run("empty table yields an empty sequence", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("SumByType", mock.Anything).Return([]repositories.TypeTotal{}, nil)

		svc := NewService(repo)
		got, err := svc.ByTransactionType(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		repo := new(MockTransactionRepository)
		repo.On("SumByType", mock.Anything).Return(nil, storeErr)

		svc := NewService(repo)
		_, err := svc.ByTransactionType(context.Background())

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestService_ByUser(t *testing.T) {
	t.Run("one row per user present", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("SumByUser", mock.Anything).Return([]repositories.UserTotal{
			{UserID: "User1", TotalAmount: decimal.NewFromFloat(10.50)},
			{UserID: "User2", TotalAmount: decimal.NewFromFloat(-3.25)},
		}, nil)

		svc := NewService(repo)
		got, err := svc.ByUser(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)

		totals := make(map[string]decimal.Decimal, len(got))
		for _, s := range got {
			totals[s.UserID] = s.TotalAmount
		}
		assert.True(t, totals["User1"].Equal(decimal.NewFromFloat(10.50)))
		assert.True(t, totals["User2"].Equal(decimal.NewFromFloat(-3.25)))
	})

	t.Run("empty table yields an empty sequence", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("SumByUser", mock.Anything).Return([]repositories.UserTotal{}, nil)

		svc := NewService(repo)
		got, err := svc.ByUser(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
