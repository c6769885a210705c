// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IDs are generated application-side so the same models work against
// postgres and the sqlite test database.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

const dateLayout = "2006-01-02"

// Date is a day-precision calendar date stored as a SQL DATE and
// serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (Date) GormDataType() string {
	return "date"
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) parse(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02 15:04:05Z07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as Date", s)
}

// DaysUntil returns the whole-day difference between d and other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// Enums
type PCStatus string

const (
	PCStatusBuilding PCStatus = "building"
	PCStatusListed   PCStatus = "listed"
	PCStatusSold     PCStatus = "sold"
	PCStatusArchived PCStatus = "archived"
)

func (s PCStatus) IsValid() bool {
	switch s {
	case PCStatusBuilding, PCStatusListed, PCStatusSold, PCStatusArchived:
		return true
	}
	return false
}

// ComponentSlot names a component's functional role in a build. Wire
// values are lowercase. Nothing prevents two components from occupying
// the same slot on one PC; the dual storage slots rely on that.
type ComponentSlot string

const (
	SlotCPU         ComponentSlot = "cpu"
	SlotGPU         ComponentSlot = "gpu"
	SlotMotherboard ComponentSlot = "motherboard"
	SlotRAM         ComponentSlot = "ram"
	SlotStorage1    ComponentSlot = "storage1"
	SlotStorage2    ComponentSlot = "storage2"
	SlotPSU         ComponentSlot = "psu"
	SlotCase        ComponentSlot = "case"
	SlotCPUCooler   ComponentSlot = "cpucooler"
	SlotAdditional  ComponentSlot = "additional"
)

func (s ComponentSlot) IsValid() bool {
	switch s {
	case SlotCPU, SlotGPU, SlotMotherboard, SlotRAM, SlotStorage1,
		SlotStorage2, SlotPSU, SlotCase, SlotCPUCooler, SlotAdditional:
		return true
	}
	return false
}
