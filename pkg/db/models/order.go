package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

// Order is a purchase record. TotalAmount is computed from the items plus
// freight when the order is created and persisted as a snapshot; it is not
// recomputed on reads.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	ClientID    uuid.UUID         `gorm:"column:client_id;type:uuid;not null;index"`
	OrderDate   time.Time         `gorm:"column:order_date;not null"`
	Status      enums.OrderStatus `gorm:"column:status;type:text;not null;default:'Pending';index"`
	Freight     float64           `gorm:"column:freight;type:numeric(12,2);not null;default:0"`
	TotalAmount float64           `gorm:"column:total_amount;type:numeric(12,2);not null;default:0"`
	Origin      *string           `gorm:"column:origin"`
	Destination *string           `gorm:"column:destination"`
	Notes       *string           `gorm:"column:notes"`
	Items       []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
