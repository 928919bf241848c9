package service

import (
	"errors"
	"fmt"

	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService owns the kisses balance. Every mutation follows the
// same sequence: fresh balance read, non-negative check, balance
// write, then a best-effort transaction append. The sequence is not
// serialized across requests; two overlapping debits can both pass the
// check against the same stale read.
type LedgerService struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	logger          *zap.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		logger:          logger,
	}
}

func (s *LedgerService) GetBalance(userID uint) (*models.BalanceResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return &models.BalanceResponse{
		Kisses: user.Kisses,
		Level:  user.Level,
		XP:     user.XP,
	}, nil
}

// ChangeBalance applies a signed delta to the caller's own balance and
// returns the new value.
func (s *LedgerService) ChangeBalance(userID uint, amount int, description string) (int, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, mapUserError(err)
	}

	newBalance := user.Kisses + amount
	if newBalance < 0 {
		return 0, ErrInsufficientBalance
	}

	if err := s.userRepo.UpdateKisses(userID, newBalance); err != nil {
		return 0, err
	}

	if description == "" {
		description = "Balance change"
	}
	s.recordTransaction(userID, amount, description)

	return newBalance, nil
}

// ChangeOtherBalance applies a signed delta to another user's balance.
// Any authenticated caller may do this; there is deliberately no
// ownership or role check.
func (s *LedgerService) ChangeOtherBalance(actorID, targetID uint, amount int, description string) (*models.TargetUser, error) {
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return nil, mapUserError(err)
	}

	newBalance := target.Kisses + amount
	if newBalance < 0 {
		return nil, ErrInsufficientBalance
	}

	if err := s.userRepo.UpdateKisses(targetID, newBalance); err != nil {
		return nil, err
	}

	if description == "" {
		if amount > 0 {
			description = fmt.Sprintf("Received from user %d", actorID)
		} else {
			description = fmt.Sprintf("Deducted by user %d", actorID)
		}
	}
	s.recordTransaction(targetID, amount, description)

	return &models.TargetUser{
		ID:     target.ID,
		Name:   target.Name,
		Kisses: newBalance,
	}, nil
}

// Purchase debits the product price from the user's balance and
// returns the new balance plus a product snapshot.
func (s *LedgerService) Purchase(userID, productID uint) (int, *models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrProductNotFound
		}
		return 0, nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, nil, mapUserError(err)
	}

	if user.Kisses < product.Price {
		return 0, nil, ErrInsufficientBalance
	}

	newBalance := user.Kisses - product.Price
	if err := s.userRepo.UpdateKisses(userID, newBalance); err != nil {
		return 0, nil, err
	}

	s.recordTransaction(userID, -product.Price, fmt.Sprintf("Purchase: %s", product.Name))

	return newBalance, product, nil
}

// recordTransaction appends the audit row for an already-applied
// balance change. The append is best-effort: a failed insert is logged
// and never fails the parent mutation.
func (s *LedgerService) recordTransaction(userID uint, amount int, description string) {
	transactionType := models.TransactionDebit
	if amount > 0 {
		transactionType = models.TransactionCredit
	}
	if amount < 0 {
		amount = -amount
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.logger.Error("failed to record transaction",
			zap.Uint("user_id", userID),
			zap.String("type", transactionType),
			zap.Int("amount", amount),
			zap.Error(err),
		)
	}
}
