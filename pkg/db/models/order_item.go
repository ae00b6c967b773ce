package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

// OrderItem captures the snapshot of each line within an order. Product name,
// description, sack weight and unit price are copied from the catalog at entry
// time; deleting the product later never touches the stored line.
type OrderItem struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	OrderID         uuid.UUID             `gorm:"column:order_id;type:uuid;not null;index"`
	ProductName     string                `gorm:"column:product_name;not null"`
	Description     *string               `gorm:"column:description"`
	Quantity        int                   `gorm:"column:quantity;not null"`
	SackWeight      int                   `gorm:"column:sack_weight;not null;default:0"`
	UnitPrice       float64               `gorm:"column:unit_price;type:numeric(12,4);not null"`
	CommissionType  *enums.CommissionType `gorm:"column:commission_type;type:text"`
	CommissionValue float64               `gorm:"column:commission_value;type:numeric(12,2);not null;default:0"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
