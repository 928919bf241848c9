package models

import "time"

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       int       `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
