package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lkarlova/ourkisses-backend/internal/middleware"
)

// SetupRoutes registers the full API surface under /api. Register and
// login are public; everything else sits behind the auth middleware.
func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	balanceHandler *BalanceHandler,
	shopHandler *ShopHandler,
	memoryHandler *MemoryHandler,
) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/users", middleware.AuthMiddleware(), authHandler.GetUsers)

	api.Use(middleware.AuthMiddleware())

	balance := api.Group("/balance")
	balance.Get("/", balanceHandler.GetBalance)
	balance.Post("/change", balanceHandler.ChangeBalance)
	balance.Post("/change-other", balanceHandler.ChangeOtherBalance)

	shop := api.Group("/shop")
	shop.Get("/", shopHandler.GetProducts)
	shop.Post("/add", shopHandler.AddProduct)
	shop.Post("/buy", shopHandler.BuyProduct)
	shop.Delete("/:id", shopHandler.DeleteProduct)

	memories := api.Group("/memories")
	memories.Get("/", memoryHandler.GetMemories)
	memories.Post("/add", memoryHandler.AddMemory)
	memories.Put("/:id", memoryHandler.UpdateMemory)
	memories.Delete("/:id", memoryHandler.DeleteMemory)
}
