package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/service"
)

type BalanceHandler struct {
	ledgerService *service.LedgerService
}

func NewBalanceHandler(ledgerService *service.LedgerService) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

func (h *BalanceHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	balance, err := h.ledgerService.GetBalance(userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(balance)
}

func (h *BalanceHandler) ChangeBalance(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.ChangeBalanceRequest
	if err := c.BodyParser(&req); err != nil || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Amount must be a number"))
	}

	kisses, err := h.ledgerService.ChangeBalance(userID, *req.Amount, req.Description)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.ChangeBalanceResponse{
		Message: "Balance updated",
		Kisses:  kisses,
	})
}

func (h *BalanceHandler) ChangeOtherBalance(c *fiber.Ctx) error {
	actorID := c.Locals("userID").(uint)

	var req models.ChangeOtherBalanceRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == 0 || req.Amount == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("User ID and amount are required"))
	}

	target, err := h.ledgerService.ChangeOtherBalance(actorID, req.UserID, *req.Amount, req.Description)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.ChangeOtherBalanceResponse{
		Message: "Balance updated",
		User:    *target,
	})
}
