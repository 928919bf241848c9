package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lkarlova/ourkisses-backend/internal/config"
	"github.com/lkarlova/ourkisses-backend/internal/handler"
	"github.com/lkarlova/ourkisses-backend/internal/repository"
	"github.com/lkarlova/ourkisses-backend/internal/service"
	"github.com/lkarlova/ourkisses-backend/pkg/database"
	"github.com/lkarlova/ourkisses-backend/pkg/logger"
	"github.com/lkarlova/ourkisses-backend/pkg/storage"
	"github.com/lkarlova/ourkisses-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger := logger.New()
	defer zapLogger.Sync()

	// Initialize database (migrations + product seed run inside)
	db := database.NewDatabase(cfg.DatabaseURL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	productRepo := repository.NewProductRepository(db)
	memoryRepo := repository.NewMemoryRepository(db)

	// Blob storage
	var blobStorage storage.BlobStorage
	if cfg.StorageDriver == "s3" {
		s3Storage, err := storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage:", err)
		}
		blobStorage = s3Storage
	} else {
		localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
		blobStorage = localStorage
	}

	// Services
	authService := service.NewAuthService(userRepo)
	ledgerService := service.NewLedgerService(userRepo, transactionRepo, productRepo, zapLogger)
	shopService := service.NewShopService(productRepo, ledgerService)
	memoryService := service.NewMemoryService(memoryRepo, blobStorage, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	balanceHandler := handler.NewBalanceHandler(ledgerService)
	shopHandler := handler.NewShopHandler(shopService)
	memoryHandler := handler.NewMemoryHandler(memoryService)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 6 * 1024 * 1024, // multipart uploads, photo capped at 5 MiB
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	handler.SetupRoutes(app, authHandler, balanceHandler, shopHandler, memoryHandler)

	// Uploaded photos are served read-only from the upload dir when
	// blobs live on local disk; the s3 driver serves its own URLs.
	if cfg.StorageDriver != "s3" {
		app.Static("/uploads", cfg.UploadDir)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
