// internal/models/buyer.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Buyer is immutable after creation; PCs reference it once a sale is
// recorded.
type Buyer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Contact   *string   `json:"contact" gorm:"size:255"`
	Email     *string   `json:"email" gorm:"size:255"`
	Phone     *string   `json:"phone" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Buyer) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (Buyer) TableName() string {
	return "buyers"
}
