// internal/services/buyer_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/models"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

type BuyerService struct {
	db *gorm.DB
}

type CreateBuyerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Contact *string `json:"contact"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
}

func NewBuyerService(db *gorm.DB) *BuyerService {
	return &BuyerService{db: db}
}

func (s *BuyerService) ListBuyers() ([]models.Buyer, error) {
	buyers := make([]models.Buyer, 0)
	if err := s.db.Order("name").Find(&buyers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch buyers: %w", err)
	}

	return buyers, nil
}

// No uniqueness constraint on name or email; repeat buyers are entered
// as they come.
func (s *BuyerService) CreateBuyer(req *CreateBuyerRequest) (*models.Buyer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	buyer := &models.Buyer{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	}

	if err := s.db.Create(buyer).Error; err != nil {
		return nil, fmt.Errorf("failed to create buyer: %w", err)
	}

	return buyer, nil
}

// GetBuyerPurchases returns the PCs sold to a buyer, most recent sale
// first. A PC without a sale date is unsold and never appears, even if
// its buyer reference were somehow set.
func (s *BuyerService) GetBuyerPurchases(buyerID uuid.UUID) ([]models.PC, error) {
	purchases := make([]models.PC, 0)
	if err := s.db.Where("buyer_id = ? AND sale_date IS NOT NULL", buyerID).
		Order("sale_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch buyer purchases: %w", err)
	}

	return purchases, nil
}
