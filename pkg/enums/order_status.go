package enums

import "fmt"

// OrderStatus tracks the lifecycle of an order. The five tokens are the
// canonical values exchanged over the persistence boundary; translated labels
// never reach storage.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// OrderStatusSeverity buckets statuses for display purposes.
type OrderStatusSeverity string

const (
	OrderStatusSeverityNeutral    OrderStatusSeverity = "neutral"
	OrderStatusSeverityInProgress OrderStatusSeverity = "in_progress"
	OrderStatusSeveritySuccess    OrderStatusSeverity = "success"
	OrderStatusSeverityDanger     OrderStatusSeverity = "danger"
)

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further forward transition exists.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Label returns the human-readable pt-BR label used by the back office.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendente"
	case OrderStatusProcessing:
		return "Em Processamento"
	case OrderStatusInTransit:
		return "Em Trânsito"
	case OrderStatusDelivered:
		return "Entregue"
	case OrderStatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// Severity returns the visual bucket for the status.
func (s OrderStatus) Severity() OrderStatusSeverity {
	switch s {
	case OrderStatusPending:
		return OrderStatusSeverityNeutral
	case OrderStatusProcessing, OrderStatusInTransit:
		return OrderStatusSeverityInProgress
	case OrderStatusDelivered:
		return OrderStatusSeveritySuccess
	case OrderStatusCancelled:
		return OrderStatusSeverityDanger
	}
	return OrderStatusSeverityNeutral
}

// OrderStatuses returns the enumerated statuses in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(validOrderStatuses))
	copy(out, validOrderStatuses)
	return out
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
