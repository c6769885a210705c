// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/models"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

type InventoryService struct {
	db *gorm.DB
}

type CreatePartRequest struct {
	ComponentType     string   `json:"component_type" validate:"required"`
	ComponentName     string   `json:"component_name" validate:"required"`
	BuyInPrice        *float64 `json:"buy_in_price"`
	TypicalSellPrice  *float64 `json:"typical_sell_price"`
	QuantityAvailable *int     `json:"quantity_available"`
	Notes             *string  `json:"notes"`
	PurchaseLink      *string  `json:"purchase_link"`
}

// Partial update: nil fields keep the stored value.
type UpdatePartRequest struct {
	ComponentName     *string  `json:"component_name"`
	BuyInPrice        *float64 `json:"buy_in_price"`
	TypicalSellPrice  *float64 `json:"typical_sell_price"`
	QuantityAvailable *int     `json:"quantity_available"`
	Notes             *string  `json:"notes"`
	PurchaseLink      *string  `json:"purchase_link"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) ListParts() ([]models.Part, error) {
	parts := make([]models.Part, 0)
	if err := s.db.Order("component_type, component_name").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch parts: %w", err)
	}

	return parts, nil
}

func (s *InventoryService) CreatePart(req *CreatePartRequest) (*models.Part, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	part := &models.Part{
		ComponentType:    req.ComponentType,
		ComponentName:    req.ComponentName,
		BuyInPrice:       req.BuyInPrice,
		TypicalSellPrice: req.TypicalSellPrice,
		Notes:            req.Notes,
		PurchaseLink:     req.PurchaseLink,
	}
	if req.QuantityAvailable != nil {
		part.QuantityAvailable = *req.QuantityAvailable
	}

	if err := s.db.Create(part).Error; err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	return part, nil
}

func (s *InventoryService) UpdatePart(id uuid.UUID, req *UpdatePartRequest) (*models.Part, error) {
	var part models.Part
	if err := s.db.First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.ComponentName != nil {
		updates["component_name"] = *req.ComponentName
	}
	if req.BuyInPrice != nil {
		updates["buy_in_price"] = *req.BuyInPrice
	}
	if req.TypicalSellPrice != nil {
		updates["typical_sell_price"] = *req.TypicalSellPrice
	}
	if req.QuantityAvailable != nil {
		updates["quantity_available"] = *req.QuantityAvailable
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.PurchaseLink != nil {
		updates["purchase_link"] = *req.PurchaseLink
	}

	// Empty update object is a no-op returning the stored row.
	if len(updates) == 0 {
		return &part, nil
	}

	if err := s.db.Model(&part).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}

	if err := s.db.First(&part, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload part: %w", err)
	}

	return &part, nil
}

// DeletePart removes the row if it exists and reports whether a row was
// actually removed. Deleting a missing id is not an error.
func (s *InventoryService) DeletePart(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&models.Part{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete part: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// LowStockParts surfaces the most depleted items first.
func (s *InventoryService) LowStockParts(threshold int) ([]models.Part, error) {
	parts := make([]models.Part, 0)
	if err := s.db.Where("quantity_available <= ?", threshold).
		Order("quantity_available ASC, component_type, component_name").
		Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch low stock parts: %w", err)
	}

	return parts, nil
}
