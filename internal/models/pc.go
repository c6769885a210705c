// internal/models/pc.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PC is one build moving through the Building -> Listed -> Sold ->
// Archived lifecycle. The derived fields (total_cost, profit,
// profit_percentage, days_held, days_listed) are never supplied by a
// caller; they are recomputed whenever components or sale fields change.
type PC struct {
	BaseModel
	PCName            string     `json:"pc_name" gorm:"size:255;not null"`
	BuildDate         *Date      `json:"build_date"`
	ListDate          *Date      `json:"list_date"`
	SaleDate          *Date      `json:"sale_date" gorm:"index"`
	DaysListed        *int       `json:"days_listed"`
	DaysHeld          *int       `json:"days_held"`
	BuyerID           *uuid.UUID `json:"buyer_id" gorm:"type:uuid;index"`
	Platform          *string    `json:"platform" gorm:"size:100"`
	PlatformReference *string    `json:"platform_reference" gorm:"size:255"`
	IntendedPrice     *float64   `json:"intended_price" gorm:"type:decimal(10,2)"`
	ActualSalePrice   *float64   `json:"actual_sale_price" gorm:"type:decimal(10,2)"`
	TotalCost         *float64   `json:"total_cost" gorm:"type:decimal(10,2)"`
	Profit            *float64   `json:"profit" gorm:"type:decimal(10,2)"`
	ProfitPercentage  *float64   `json:"profit_percentage" gorm:"type:decimal(10,2)"`
	Notes             *string    `json:"notes" gorm:"type:text"`
	Status            PCStatus   `json:"status" gorm:"type:varchar(20);not null;default:'building';index"`
}

func (PC) TableName() string {
	return "pcs"
}

// RecomputeDerived reapplies the derived-field contract from the
// current sale and date fields. The store's trigger did this on every
// pcs update; here it runs at the end of the assembly, sale and update
// transactions.
//
//	profit            = actual_sale_price - total_cost (missing cost as 0)
//	profit_percentage = profit / total_cost * 100 when total_cost != 0
//	days_held         = sale_date - build_date in whole days
//	days_listed       = sale_date - list_date in whole days
func (p *PC) RecomputeDerived() {
	if p.ActualSalePrice != nil {
		cost := 0.0
		if p.TotalCost != nil {
			cost = *p.TotalCost
		}
		profit := *p.ActualSalePrice - cost
		p.Profit = &profit
		if cost != 0 {
			pct := profit / cost * 100
			p.ProfitPercentage = &pct
		} else {
			p.ProfitPercentage = nil
		}
	} else {
		p.Profit = nil
		p.ProfitPercentage = nil
	}

	if p.BuildDate != nil && p.SaleDate != nil {
		days := p.BuildDate.DaysUntil(*p.SaleDate)
		p.DaysHeld = &days
	} else {
		p.DaysHeld = nil
	}

	if p.ListDate != nil && p.SaleDate != nil {
		days := p.ListDate.DaysUntil(*p.SaleDate)
		p.DaysListed = &days
	} else {
		p.DaysListed = nil
	}
}

// Component is a component instance consumed by one particular PC
// build. Position preserves insertion order within the build.
type Component struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	PCID          uuid.UUID     `json:"pc_id" gorm:"type:uuid;not null;index"`
	ComponentType ComponentSlot `json:"component_type" gorm:"type:varchar(20);not null"`
	ComponentName string        `json:"component_name" gorm:"size:255;not null"`
	Cost          float64       `json:"cost" gorm:"type:decimal(10,2);not null"`
	Notes         *string       `json:"notes" gorm:"type:text"`
	Position      int           `json:"-" gorm:"not null;default:0"`
}

func (c *Component) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Component) TableName() string {
	return "pc_components"
}

// PCWithComponents is the aggregate returned by the assembly
// transaction and by single-PC fetches.
type PCWithComponents struct {
	PC
	Components []Component `json:"components"`
}
