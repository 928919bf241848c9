package repository

import (
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"gorm.io/gorm"
)

type MemoryRepository interface {
	Create(memory *models.Memory) error
	GetByUserID(userID uint) ([]models.Memory, error)
	GetByIDAndUserID(id, userID uint) (*models.Memory, error)
	Update(memory *models.Memory) error
	Delete(id, userID uint) (int64, error)
}

type memoryRepository struct {
	db *gorm.DB
}

func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepository{db: db}
}

func (r *memoryRepository) Create(memory *models.Memory) error {
	return r.db.Create(memory).Error
}

func (r *memoryRepository) GetByUserID(userID uint) ([]models.Memory, error) {
	var memories []models.Memory
	err := r.db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&memories).Error
	return memories, err
}

// GetByIDAndUserID doubles as the ownership check: a memory owned by
// someone else is indistinguishable from a missing one.
func (r *memoryRepository) GetByIDAndUserID(id, userID uint) (*models.Memory, error) {
	var memory models.Memory
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&memory).Error
	if err != nil {
		return nil, err
	}
	return &memory, nil
}

func (r *memoryRepository) Update(memory *models.Memory) error {
	return r.db.Save(memory).Error
}

func (r *memoryRepository) Delete(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Memory{})
	return result.RowsAffected, result.Error
}
