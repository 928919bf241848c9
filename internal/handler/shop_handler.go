package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/service"
)

type ShopHandler struct {
	shopService *service.ShopService
}

func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

func (h *ShopHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.shopService.GetProducts()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(products)
}

func (h *ShopHandler) AddProduct(c *fiber.Ctx) error {
	var req models.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if req.Name == "" || req.Price == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Name and price are required"))
	}
	if *req.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Price must be a positive number"))
	}

	product, err := h.shopService.AddProduct(req.Name, req.Description, *req.Price)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.AddProductResponse{
		Message: "Product added",
		Product: *product,
	})
}

func (h *ShopHandler) BuyProduct(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.BuyRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Product ID is required"))
	}

	kisses, product, err := h.shopService.Buy(userID, req.ProductID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.PurchaseResponse{
		Message: "Product purchased successfully",
		Kisses:  kisses,
		Product: *product,
	})
}

func (h *ShopHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid product ID"))
	}

	if err := h.shopService.DeleteProduct(uint(productID)); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.MessageResponse{Message: "Product deleted successfully"})
}
