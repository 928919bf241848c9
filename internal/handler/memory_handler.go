package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lkarlova/ourkisses-backend/internal/models"
	"github.com/lkarlova/ourkisses-backend/internal/service"
)

type MemoryHandler struct {
	memoryService *service.MemoryService
}

func NewMemoryHandler(memoryService *service.MemoryService) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
	}
}

func (h *MemoryHandler) GetMemories(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	memories, err := h.memoryService.GetUserMemories(userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(memories)
}

func (h *MemoryHandler) AddMemory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	memory, err := h.memoryService.CreateMemory(
		userID,
		c.FormValue("text"),
		c.FormValue("date"),
		formPhoto(c),
	)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.MemoryResponse{
		Message: "Memory added",
		Memory:  *memory,
	})
}

func (h *MemoryHandler) UpdateMemory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	memoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid memory ID"))
	}

	memory, err := h.memoryService.UpdateMemory(
		userID,
		uint(memoryID),
		c.FormValue("text"),
		c.FormValue("date"),
		formPhoto(c),
		c.FormValue("deletePhoto") == "true",
	)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.MemoryResponse{
		Message: "Memory updated",
		Memory:  *memory,
	})
}

func (h *MemoryHandler) DeleteMemory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	memoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid memory ID"))
	}

	if err := h.memoryService.DeleteMemory(userID, uint(memoryID)); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(models.MessageResponse{Message: "Memory deleted successfully"})
}

// formPhoto returns the optional photo upload, nil when absent.
func formPhoto(c *fiber.Ctx) *multipart.FileHeader {
	photo, err := c.FormFile("photo")
	if err != nil {
		return nil
	}
	return photo
}
