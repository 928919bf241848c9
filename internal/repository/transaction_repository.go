package repository

import (
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository is append-only; transactions are never updated
// or deleted.
type TransactionRepository interface {
	Create(transaction *models.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}
