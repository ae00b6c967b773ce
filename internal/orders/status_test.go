package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedstorehq/feedstore-backend/pkg/enums"
)

func TestPermissivePolicyAllowsEverything(t *testing.T) {
	policy := PermissivePolicy()
	for _, from := range enums.OrderStatuses() {
		for _, to := range enums.OrderStatuses() {
			assert.True(t, policy.Allows(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStrictPolicyTransitions(t *testing.T) {
	policy := StrictPolicy()

	tests := []struct {
		from    enums.OrderStatus
		to      enums.OrderStatus
		allowed bool
	}{
		{enums.OrderStatusPending, enums.OrderStatusProcessing, true},
		{enums.OrderStatusPending, enums.OrderStatusDelivered, true},
		{enums.OrderStatusPending, enums.OrderStatusCancelled, true},
		{enums.OrderStatusProcessing, enums.OrderStatusPending, false},
		{enums.OrderStatusInTransit, enums.OrderStatusDelivered, true},
		{enums.OrderStatusInTransit, enums.OrderStatusProcessing, false},
		{enums.OrderStatusDelivered, enums.OrderStatusCancelled, false},
		{enums.OrderStatusCancelled, enums.OrderStatusPending, false},
		{enums.OrderStatusDelivered, enums.OrderStatusDelivered, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.allowed, policy.Allows(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, "strict", PolicyFor(true).Name())
	assert.Equal(t, "permissive", PolicyFor(false).Name())
}

func TestDisplayTableCoversAllStatuses(t *testing.T) {
	table := DisplayTable()
	assert.Len(t, table, len(enums.OrderStatuses()))

	byStatus := make(map[enums.OrderStatus]StatusDisplay, len(table))
	for _, entry := range table {
		byStatus[entry.Status] = entry
	}
	assert.Equal(t, "Entregue", byStatus[enums.OrderStatusDelivered].Label)
	assert.Equal(t, enums.OrderStatusSeverityDanger, byStatus[enums.OrderStatusCancelled].Severity)
}
