package models

import "time"

// Memory is a dated journal entry owned by a single user. Photo holds
// the public path of the uploaded blob ("/uploads/<file>") or nil.
type Memory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	Photo     *string   `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
}
