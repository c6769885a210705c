// internal/models/part.go
package models

// Part is a stocked component available for future builds, independent
// of any specific PC.
type Part struct {
	BaseModel
	ComponentType     string   `json:"component_type" gorm:"size:100;not null;index"`
	ComponentName     string   `json:"component_name" gorm:"size:255;not null"`
	BuyInPrice        *float64 `json:"buy_in_price" gorm:"type:decimal(10,2)"`
	TypicalSellPrice  *float64 `json:"typical_sell_price" gorm:"type:decimal(10,2)"`
	QuantityAvailable int      `json:"quantity_available" gorm:"not null;default:0"`
	Notes             *string  `json:"notes" gorm:"type:text"`
	PurchaseLink      *string  `json:"purchase_link" gorm:"type:text"`
}

func (Part) TableName() string {
	return "parts_inventory"
}
