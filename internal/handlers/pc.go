// internal/handlers/pc.go
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

type PCHandler struct {
	pcService *services.PCService
}

func NewPCHandler(pcService *services.PCService) *PCHandler {
	return &PCHandler{pcService: pcService}
}

// GET /api/pcs
func (h *PCHandler) ListPCs(c *gin.Context) {
	pcs, err := h.pcService.ListPCs()
	if err != nil {
		logrus.WithError(err).Error("Error fetching PCs")
		utils.InternalErrorResponse(c, "Failed to fetch PCs")
		return
	}

	c.JSON(http.StatusOK, pcs)
}

// GET /api/pcs/:id
func (h *PCHandler) GetPC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "PC")
		return
	}

	pc, err := h.pcService.GetPC(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "PC")
			return
		}
		logrus.WithError(err).Error("Error fetching PC")
		utils.InternalErrorResponse(c, "Failed to fetch PC")
		return
	}

	c.JSON(http.StatusOK, pc)
}

// POST /api/pcs
func (h *PCHandler) CreatePC(c *gin.Context) {
	var req services.CreatePCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error creating PC")
		utils.InternalErrorResponse(c, "Failed to create PC")
		return
	}

	pc, err := h.pcService.CreatePC(&req)
	if err != nil {
		logrus.WithError(err).Error("Error creating PC")
		utils.InternalErrorResponse(c, "Failed to create PC")
		return
	}

	c.JSON(http.StatusCreated, pc)
}

// PUT /api/pcs/:id
func (h *PCHandler) UpdatePC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "PC")
		return
	}

	var req services.UpdatePCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error updating PC")
		utils.InternalErrorResponse(c, "Failed to update PC")
		return
	}

	pc, err := h.pcService.UpdatePC(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "PC")
			return
		}
		logrus.WithError(err).Error("Error updating PC")
		utils.InternalErrorResponse(c, "Failed to update PC")
		return
	}

	c.JSON(http.StatusOK, pc)
}

// DELETE /api/pcs/:id
func (h *PCHandler) DeletePC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "PC")
		return
	}

	if err := h.pcService.DeletePC(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "PC")
			return
		}
		logrus.WithError(err).Error("Error deleting PC")
		utils.InternalErrorResponse(c, "Failed to delete PC")
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /api/pcs/:id/sell
func (h *PCHandler) SellPC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "PC")
		return
	}

	var req services.SellPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error selling PC")
		utils.InternalErrorResponse(c, "Failed to sell PC")
		return
	}

	pc, err := h.pcService.SellPC(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "PC")
			return
		}
		logrus.WithError(err).Error("Error selling PC")
		utils.InternalErrorResponse(c, "Failed to sell PC")
		return
	}

	c.JSON(http.StatusOK, pc)
}
