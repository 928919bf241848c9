package service_test

import (
	"testing"

	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/repository/mocks"
	"github.com/lkarlova/ourkisses-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(userRepo)

	userRepo.On("EmailExists", "alice@example.com").Return(false, nil).Once()
	userRepo.On("Create", mock.MatchedBy(func(user *models.User) bool {
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		// Every new account starts with the default balance.
		assert.Equal(t, 100, user.Kisses)
		assert.Equal(t, 1, user.Level)
		assert.Equal(t, 0, user.XP)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		return true
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 5
	}).Return(nil).Once()

	resp, err := authService.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(5), resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(userRepo)

	userRepo.On("EmailExists", "alice@example.com").Return(true, nil).Once()

	_, err := authService.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, service.ErrEmailTaken)
	// No duplicate row may ever be created.
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(userRepo)
	userRepo.On("GetByEmail", "alice@example.com").Return(&models.User{
		ID:       5,
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: string(hash),
		Kisses:   100,
		Level:    1,
	}, nil).Once()

	resp, err := authService.Login(models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 100, resp.User.Kisses)
	assert.Equal(t, 1, resp.User.Level)
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestLogin_UniformFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(userRepo)
	userRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	userRepo.On("GetByEmail", "alice@example.com").Return(&models.User{
		Email:    "alice@example.com",
		Password: string(hash),
	}, nil).Once()

	_, errUnknown := authService.Login(models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	_, errWrongPass := authService.Login(models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestGetAllUsers(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(userRepo)
	userRepo.On("GetAll").Return([]models.User{
		{ID: 2, Name: "Alice", Email: "alice@example.com", Password: "hash", Kisses: 80},
		{ID: 1, Name: "Bella", Email: "bella@example.com", Password: "hash", Kisses: 120},
	}, nil).Once()

	users, err := authService.GetAllUsers()

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.UserSummary{ID: 2, Name: "Alice", Email: "alice@example.com", Kisses: 80}, users[0])
	assert.Equal(t, models.UserSummary{ID: 1, Name: "Bella", Email: "bella@example.com", Kisses: 120}, users[1])
}
