package orders

import (
	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

// StatusPolicy decides which transition targets are reachable from a given
// status. Keeping the rules in a policy value keeps the permissiveness a
// configuration choice rather than something baked into the transition code.
type StatusPolicy struct {
	name    string
	allowed map[enums.OrderStatus][]enums.OrderStatus
}

// Name identifies the policy in logs.
func (p StatusPolicy) Name() string {
	return p.name
}

// Allows reports whether the policy permits moving from one status to another.
// Setting a status to itself is always a no-op level allowance.
func (p StatusPolicy) Allows(from, to enums.OrderStatus) bool {
	if from == to {
		return true
	}
	targets, ok := p.allowed[from]
	if !ok {
		return false
	}
	for _, candidate := range targets {
		if candidate == to {
			return true
		}
	}
	return false
}

// PermissivePolicy reproduces the historical behavior: any status can be
// relabeled to any other enumerated status.
func PermissivePolicy() StatusPolicy {
	all := enums.OrderStatuses()
	allowed := make(map[enums.OrderStatus][]enums.OrderStatus, len(all))
	for _, from := range all {
		allowed[from] = all
	}
	return StatusPolicy{name: "permissive", allowed: allowed}
}

// StrictPolicy enforces monotonic forward transitions, with Cancelled
// reachable from any non-terminal state and terminal states frozen.
func StrictPolicy() StatusPolicy {
	return StatusPolicy{
		name: "strict",
		allowed: map[enums.OrderStatus][]enums.OrderStatus{
			enums.OrderStatusPending:    {enums.OrderStatusProcessing, enums.OrderStatusInTransit, enums.OrderStatusDelivered, enums.OrderStatusCancelled},
			enums.OrderStatusProcessing: {enums.OrderStatusInTransit, enums.OrderStatusDelivered, enums.OrderStatusCancelled},
			enums.OrderStatusInTransit:  {enums.OrderStatusDelivered, enums.OrderStatusCancelled},
			enums.OrderStatusDelivered:  {},
			enums.OrderStatusCancelled:  {},
		},
	}
}

// PolicyFor picks the transition policy from configuration.
func PolicyFor(strict bool) StatusPolicy {
	if strict {
		return StrictPolicy()
	}
	return PermissivePolicy()
}

// StatusDisplay is the presentation lookup for one status.
type StatusDisplay struct {
	Status   enums.OrderStatus         `json:"status"`
	Label    string                    `json:"label"`
	Severity enums.OrderStatusSeverity `json:"severity"`
}

// DisplayTable returns the label and severity bucket for every status.
func DisplayTable() []StatusDisplay {
	statuses := enums.OrderStatuses()
	table := make([]StatusDisplay, 0, len(statuses))
	for _, status := range statuses {
		table = append(table, StatusDisplay{
			Status:   status,
			Label:    status.Label(),
			Severity: status.Severity(),
		})
	}
	return table
}
