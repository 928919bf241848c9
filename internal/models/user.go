package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Kisses    int       `json:"kisses" gorm:"not null;default:100"`
	Level     int       `json:"level" gorm:"not null;default:1"`
	XP        int       `json:"xp" gorm:"column:xp;not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is the projection returned by the user list endpoint.
type UserSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Kisses int    `json:"kisses"`
}
