package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog entry. Animal type and subtype tags are always
// stored as arrays, possibly of length one; the string-or-array union the
// legacy data carried is normalized at the persistence boundary.
type Product struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Name            string         `gorm:"column:name;not null"`
	Description     string         `gorm:"column:description"`
	PricePerKg      float64        `gorm:"column:price_per_kg;type:numeric(12,2);not null;default:0"`
	PricePerSack    float64        `gorm:"column:price_per_sack;type:numeric(12,2);not null;default:0"`
	SackWeight      int            `gorm:"column:sack_weight;not null;default:0"`
	Image           string         `gorm:"column:image"`
	AnimalTypes     pq.StringArray `gorm:"column:animal_types;type:text[]"`
	SubTypes        pq.StringArray `gorm:"column:sub_types;type:text[]"`
	Benefits        pq.StringArray `gorm:"column:benefits;type:text[]"`
	ShowAnimalNames bool           `gorm:"column:show_animal_names;not null;default:false"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the legacy table name used by the storefront data.
func (Product) TableName() string {
	return "products"
}
