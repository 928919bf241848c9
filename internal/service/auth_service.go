package service

import (
	"errors"
	"fmt"

	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/repository"
	"github.com/lkarlova/ourkisses-backend/pkg/bcrypt"
	jwtPkg "github.com/lkarlova/ourkisses-backend/pkg/jwt"
	"gorm.io/gorm"
)

const (
	DefaultKisses = 100
	DefaultLevel  = 1
	DefaultXP     = 0
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.RegisterResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Kisses:   DefaultKisses,
		Level:    DefaultLevel,
		XP:       DefaultXP,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.RegisterResponse{
		Message: "User created successfully",
		Token:   token,
		User: models.PublicUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		// Same error whether the email is unknown or the password is
		// wrong, so logins cannot probe which emails exist.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: models.LoginUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Kisses: user.Kisses,
			Level:  user.Level,
			XP:     user.XP,
		},
	}, nil
}

// GetAllUsers lists every registered user so a caller can pick someone
// to send kisses to.
func (s *AuthService) GetAllUsers() ([]models.UserSummary, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, models.UserSummary{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Kisses: user.Kisses,
		})
	}
	return summaries, nil
}

func mapUserError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
