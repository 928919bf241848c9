package database

import (
	"log"

	"github.com/lkarlova/ourkisses-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Product{},
		&models.Memory{},
	)
	if err != nil {
		return err
	}

	return seedProducts(db)
}

// seedProducts inserts the default catalog on first run only.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Romantic dinner", Description: "Candlelit dinner", Price: 50},
		{Name: "Walk in the park", Description: "A walk together", Price: 30},
		{Name: "Surprise gift", Description: "A small present", Price: 100},
		{Name: "Movie night", Description: "Watching a movie together", Price: 40},
		{Name: "Breakfast in bed", Description: "A tasty breakfast", Price: 60},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	return nil
}
