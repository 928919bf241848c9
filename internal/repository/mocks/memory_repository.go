package mocks

import (
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MemoryRepository struct {
	mock.Mock
}

func (m *MemoryRepository) Create(memory *models.Memory) error {
	args := m.Called(memory)
	return args.Error(0)
}

func (m *MemoryRepository) GetByUserID(userID uint) ([]models.Memory, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Memory), args.Error(1)
}

func (m *MemoryRepository) GetByIDAndUserID(id, userID uint) (*models.Memory, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Memory), args.Error(1)
}

func (m *MemoryRepository) Update(memory *models.Memory) error {
	args := m.Called(memory)
	return args.Error(0)
}

func (m *MemoryRepository) Delete(id, userID uint) (int64, error) {
	args := m.Called(id, userID)
	return args.Get(0).(int64), args.Error(1)
}
