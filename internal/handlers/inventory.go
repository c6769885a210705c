// internal/handlers/inventory.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/buildflip/pc-inventory-backend/internal/services"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

// Parts with at most this many units left count as low stock.
const lowStockThreshold = 5

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GET /api/inventory
func (h *InventoryHandler) ListParts(c *gin.Context) {
	parts, err := h.inventoryService.ListParts()
	if err != nil {
		logrus.WithError(err).Error("Error fetching parts")
		utils.InternalErrorResponse(c, "Failed to fetch parts")
		return
	}

	c.JSON(http.StatusOK, parts)
}

// POST /api/inventory
func (h *InventoryHandler) CreatePart(c *gin.Context) {
	var req services.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error creating part")
		utils.InternalErrorResponse(c, "Failed to create part")
		return
	}

	part, err := h.inventoryService.CreatePart(&req)
	if err != nil {
		logrus.WithError(err).Error("Error creating part")
		utils.InternalErrorResponse(c, "Failed to create part")
		return
	}

	c.JSON(http.StatusCreated, part)
}

// PUT /api/inventory/:id
func (h *InventoryHandler) UpdatePart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Part")
		return
	}

	var req services.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error updating part")
		utils.InternalErrorResponse(c, "Failed to update part")
		return
	}

	part, err := h.inventoryService.UpdatePart(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Part")
			return
		}
		logrus.WithError(err).Error("Error updating part")
		utils.InternalErrorResponse(c, "Failed to update part")
		return
	}

	c.JSON(http.StatusOK, part)
}

// DELETE /api/inventory/:id
func (h *InventoryHandler) DeletePart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Part")
		return
	}

	removed, err := h.inventoryService.DeletePart(id)
	if err != nil {
		logrus.WithError(err).Error("Error deleting part")
		utils.InternalErrorResponse(c, "Failed to delete part")
		return
	}
	if !removed {
		utils.NotFoundResponse(c, "Part")
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	parts, err := h.inventoryService.LowStockParts(lowStockThreshold)
	if err != nil {
		logrus.WithError(err).Error("Error fetching low stock parts")
		utils.InternalErrorResponse(c, "Failed to fetch low stock parts")
		return
	}

	c.JSON(http.StatusOK, parts)
}
