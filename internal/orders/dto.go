package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/internal/pricing"
	"github.com/feedstorehq/feedstore-backend/pkg/db/models"
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

// OrderItemDTO exposes one line item together with its computed figures. All
// consumers (order detail, lists, documents) read the computed values from
// here so the commission formula lives in exactly one place.
type OrderItemDTO struct {
	ID              uuid.UUID             `json:"id"`
	ProductName     string                `json:"product_name"`
	Description     *string               `json:"description,omitempty"`
	Quantity        int                   `json:"quantity"`
	SackWeight      int                   `json:"sack_weight"`
	UnitPrice       float64               `json:"unit_price"`
	CommissionType  *enums.CommissionType `json:"commission_type,omitempty"`
	CommissionValue float64               `json:"commission_value"`
	Subtotal        float64               `json:"subtotal"`
	Commission      float64               `json:"commission"`
}

// OrderDTO is the full order representation returned by the API.
type OrderDTO struct {
	ID             uuid.UUID                 `json:"id"`
	ClientID       uuid.UUID                 `json:"client_id"`
	OrderDate      time.Time                 `json:"order_date"`
	Status         enums.OrderStatus         `json:"status"`
	StatusLabel    string                    `json:"status_label"`
	StatusSeverity enums.OrderStatusSeverity `json:"status_severity"`
	Freight        float64                   `json:"freight"`
	TotalAmount    float64                   `json:"total_amount"`
	Commission     float64                   `json:"commission"`
	Origin         *string                   `json:"origin,omitempty"`
	Destination    *string                   `json:"destination,omitempty"`
	Notes          *string                   `json:"notes,omitempty"`
	Items          []OrderItemDTO            `json:"items"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// ToOrderDTO maps a persisted order onto the API shape, computing per-item
// subtotals and commissions on the way out.
func ToOrderDTO(order models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:              item.ID,
			ProductName:     item.ProductName,
			Description:     item.Description,
			Quantity:        item.Quantity,
			SackWeight:      item.SackWeight,
			UnitPrice:       item.UnitPrice,
			CommissionType:  item.CommissionType,
			CommissionValue: item.CommissionValue,
			Subtotal:        pricing.Subtotal(item),
			Commission:      pricing.Commission(item),
		})
	}

	return OrderDTO{
		ID:             order.ID,
		ClientID:       order.ClientID,
		OrderDate:      order.OrderDate,
		Status:         order.Status,
		StatusLabel:    order.Status.Label(),
		StatusSeverity: order.Status.Severity(),
		Freight:        order.Freight,
		TotalAmount:    order.TotalAmount,
		Commission:     pricing.OrderCommission(order),
		Origin:         order.Origin,
		Destination:    order.Destination,
		Notes:          order.Notes,
		Items:          items,
		CreatedAt:      order.CreatedAt,
	}
}

// ToOrderDTOs maps a slice of orders.
func ToOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, ToOrderDTO(order))
	}
	return out
}
