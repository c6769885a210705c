// internal/services/pc_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/models"
	"github.com/buildflip/pc-inventory-backend/internal/utils"
)

type PCService struct {
	db *gorm.DB
}

type CreateComponentRequest struct {
	ComponentType models.ComponentSlot `json:"component_type" validate:"required,component_slot"`
	ComponentName string               `json:"component_name" validate:"required"`
	Cost          float64              `json:"cost"`
	Notes         *string              `json:"notes"`
}

type CreatePCRequest struct {
	PCName        string                   `json:"pc_name" validate:"required"`
	BuildDate     *models.Date             `json:"build_date"`
	IntendedPrice *float64                 `json:"intended_price"`
	Notes         *string                  `json:"notes"`
	Components    []CreateComponentRequest `json:"components" validate:"omitempty,dive"`
}

// Partial update: nil fields keep the stored value. No transition table
// guards status; any of the four values may be set at any time.
type UpdatePCRequest struct {
	PCName        *string          `json:"pc_name"`
	BuildDate     *models.Date     `json:"build_date"`
	ListDate      *models.Date     `json:"list_date"`
	IntendedPrice *float64         `json:"intended_price"`
	Notes         *string          `json:"notes"`
	Status        *models.PCStatus `json:"status" validate:"omitempty,pc_status"`
}

type SellPCRequest struct {
	SaleDate          *models.Date `json:"sale_date" validate:"required"`
	ActualSalePrice   *float64     `json:"actual_sale_price" validate:"required"`
	BuyerID           *uuid.UUID   `json:"buyer_id"`
	Platform          *string      `json:"platform"`
	PlatformReference *string      `json:"platform_reference"`
}

func NewPCService(db *gorm.DB) *PCService {
	return &PCService{db: db}
}

func (s *PCService) ListPCs() ([]models.PC, error) {
	pcs := make([]models.PC, 0)
	if err := s.db.Order("created_at DESC").Find(&pcs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pcs: %w", err)
	}

	return pcs, nil
}

func (s *PCService) GetPC(id uuid.UUID) (*models.PCWithComponents, error) {
	var pc models.PC
	if err := s.db.First(&pc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	components, err := s.componentsFor(s.db, pc.ID)
	if err != nil {
		return nil, err
	}

	return &models.PCWithComponents{PC: pc, Components: components}, nil
}

// CreatePC runs the assembly transaction: insert the header with status
// building, insert the components in the order given, then recompute
// total_cost from their sum. Any failure rolls the whole build back so
// no partial PC is ever visible.
func (s *PCService) CreatePC(req *CreatePCRequest) (*models.PCWithComponents, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pc := &models.PC{
		PCName:        req.PCName,
		BuildDate:     req.BuildDate,
		IntendedPrice: req.IntendedPrice,
		Notes:         req.Notes,
		Status:        models.PCStatusBuilding,
	}
	components := make([]models.Component, 0, len(req.Components))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pc).Error; err != nil {
			return fmt.Errorf("failed to create pc: %w", err)
		}

		for i, compReq := range req.Components {
			component := models.Component{
				PCID:          pc.ID,
				ComponentType: compReq.ComponentType,
				ComponentName: compReq.ComponentName,
				Cost:          compReq.Cost,
				Notes:         compReq.Notes,
				Position:      i,
			}

			if err := tx.Create(&component).Error; err != nil {
				return fmt.Errorf("failed to create component: %w", err)
			}

			components = append(components, component)
		}

		return s.recomputeTotalCost(tx, pc)
	})

	if err != nil {
		return nil, err
	}

	return &models.PCWithComponents{PC: *pc, Components: components}, nil
}

func (s *PCService) UpdatePC(id uuid.UUID, req *UpdatePCRequest) (*models.PC, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var pc models.PC
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if req.PCName != nil {
			pc.PCName = *req.PCName
		}
		if req.BuildDate != nil {
			pc.BuildDate = req.BuildDate
		}
		if req.ListDate != nil {
			pc.ListDate = req.ListDate
		}
		if req.IntendedPrice != nil {
			pc.IntendedPrice = req.IntendedPrice
		}
		if req.Notes != nil {
			pc.Notes = req.Notes
		}
		if req.Status != nil {
			pc.Status = *req.Status
		}

		// The original store recomputed derived fields on every pcs
		// update; keep that contract when dates shift.
		pc.RecomputeDerived()

		if err := tx.Save(&pc).Error; err != nil {
			return fmt.Errorf("failed to update pc: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &pc, nil
}

// SellPC records a completed sale and derives the final financial and
// time metrics in the same transaction, so the returned row already
// carries profit, profit_percentage and days_held. Re-selling an
// already-sold PC simply overwrites the prior sale fields.
func (s *PCService) SellPC(id uuid.UUID, req *SellPCRequest) (*models.PC, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var pc models.PC
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		pc.SaleDate = req.SaleDate
		pc.ActualSalePrice = req.ActualSalePrice
		pc.BuyerID = req.BuyerID
		pc.Platform = req.Platform
		pc.PlatformReference = req.PlatformReference
		pc.Status = models.PCStatusSold
		pc.RecomputeDerived()

		if err := tx.Save(&pc).Error; err != nil {
			return fmt.Errorf("failed to sell pc: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &pc, nil
}

// DeletePC removes the PC and the components it owns.
func (s *PCService) DeletePC(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Component{}, "pc_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete components: %w", err)
		}

		result := tx.Delete(&models.PC{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete pc: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (s *PCService) componentsFor(db *gorm.DB, pcID uuid.UUID) ([]models.Component, error) {
	components := make([]models.Component, 0)
	if err := db.Where("pc_id = ?", pcID).Order("position").Find(&components).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch components: %w", err)
	}

	return components, nil
}

// recomputeTotalCost replaces the component insert/delete trigger:
// total_cost always equals the sum of the PC's component costs, 0 for a
// build with no components yet.
func (s *PCService) recomputeTotalCost(tx *gorm.DB, pc *models.PC) error {
	var total float64
	if err := tx.Model(&models.Component{}).
		Where("pc_id = ?", pc.ID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error; err != nil {
		return fmt.Errorf("failed to sum component costs: %w", err)
	}

	pc.TotalCost = &total
	if err := tx.Model(pc).Update("total_cost", total).Error; err != nil {
		return fmt.Errorf("failed to update total cost: %w", err)
	}

	return nil
}
