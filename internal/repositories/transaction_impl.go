package repositories

import (
	"context"
	"errors"

	"moneta/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a GORM-backed transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&transactions).Error
	return transactions, err
}

// GetForSession returns (nil, nil) when no row matches. A transaction owned
// by a different session is indistinguishable from a nonexistent one.
func (r *transactionRepository) GetForSession(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, id).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) SumBySession(ctx context.Context, sessionID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
