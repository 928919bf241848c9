package service

import (
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/repository"
)

type ShopService struct {
	productRepo repository.ProductRepository
	ledger      *LedgerService
}

func NewShopService(productRepo repository.ProductRepository, ledger *LedgerService) *ShopService {
	return &ShopService{
		productRepo: productRepo,
		ledger:      ledger,
	}
}

func (s *ShopService) GetProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *ShopService) AddProduct(name, description string, price int) (*models.Product, error) {
	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ShopService) DeleteProduct(id uint) error {
	rows, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Buy delegates to the ledger, which owns the debit and its audit row.
func (s *ShopService) Buy(userID, productID uint) (int, *models.Product, error) {
	return s.ledger.Purchase(userID, productID)
}
