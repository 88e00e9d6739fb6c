package repositories

import (
	"context"
	"errors"

	"finledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) List(ctx context.Context, offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&transactions)
	return transactions, result.Error
}

func (r *transactionRepository) ListAboveAmount(ctx context.Context, threshold decimal.Decimal, offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := r.db.WithContext(ctx).
		Where("amount > ?", threshold).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&transactions)
	return transactions, result.Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) Save(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *transactionRepository) SumByType(ctx context.Context) ([]TypeTotal, error) {
	var totals []TypeTotal
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("transaction_type, SUM(amount) AS total_amount").
		Group("transaction_type").
		Scan(&totals)
	return totals, result.Error
}

func (r *transactionRepository) SumByUser(ctx context.Context) ([]UserTotal, error) {
	var totals []UserTotal
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("user_id, SUM(amount) AS total_amount").
		Group("user_id").
		Scan(&totals)
	return totals, result.Error
}
