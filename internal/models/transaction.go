package models

import "time"

const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is an append-only audit record: one row per balance
// mutation, amount stored as an absolute value.
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null"`
	Amount      int       `json:"amount" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
