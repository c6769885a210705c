// internal/handlers/buyer.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/buildflip/pc-inventory-backend/internal/services"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

type BuyerHandler struct {
	buyerService *services.BuyerService
}

func NewBuyerHandler(buyerService *services.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

// GET /api/buyers
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.buyerService.ListBuyers()
	if err != nil {
		logrus.WithError(err).Error("Error fetching buyers")
		utils.InternalErrorResponse(c, "Failed to fetch buyers")
		return
	}

	c.JSON(http.StatusOK, buyers)
}

// POST /api/buyers
func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var req services.CreateBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Error("Error creating buyer")
		utils.InternalErrorResponse(c, "Failed to create buyer")
		return
	}

	buyer, err := h.buyerService.CreateBuyer(&req)
	if err != nil {
		logrus.WithError(err).Error("Error creating buyer")
		utils.InternalErrorResponse(c, "Failed to create buyer")
		return
	}

	c.JSON(http.StatusCreated, buyer)
}

// GET /api/buyers/:id/purchases
func (h *BuyerHandler) BuyerPurchases(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Buyer")
		return
	}

	purchases, err := h.buyerService.GetBuyerPurchases(id)
	if err != nil {
		logrus.WithError(err).Error("Error fetching buyer purchases")
		utils.InternalErrorResponse(c, "Failed to fetch buyer purchases")
		return
	}

	c.JSON(http.StatusOK, purchases)
}
