package service

import "errors"

var (
	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrMemoryNotFound      = errors.New("memory not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTextDateRequired    = errors.New("text and date are required")
	ErrInvalidFileType     = errors.New("only image files are allowed")
	ErrFileTooLarge        = errors.New("file size too large")
)
