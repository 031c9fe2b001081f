package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usahakita/backoffice-api/internal/domain/entity"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want entity.OrderStatus
		ok   bool
	}{
		{"DRAFT", entity.OrderStatusDraft, true},
		{"confirmed", entity.OrderStatusConfirmed, true},
		{"SHIPPED", entity.OrderStatusShipped, true},
		// Literal legacy untuk "dikirim" semua dipetakan ke SHIPPED.
		{"sent", entity.OrderStatusShipped, true},
		{"dikirim", entity.OrderStatusShipped, true},
		{"  DIKIRIM  ", entity.OrderStatusShipped, true},
		{"selesai", entity.OrderStatusCompleted, true},
		{"COMPLETED", entity.OrderStatusCompleted, true},
		{"cancelled", entity.OrderStatusCancelled, true},
		{"canceled", entity.OrderStatusCancelled, true},
		{"batal", entity.OrderStatusCancelled, true},
		{"terkirim", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := entity.ParseOrderStatus(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderStatus_IsShipped(t *testing.T) {
	assert.True(t, entity.OrderStatusShipped.IsShipped())
	assert.False(t, entity.OrderStatusDraft.IsShipped())
	assert.False(t, entity.OrderStatusCompleted.IsShipped())
	assert.False(t, entity.OrderStatusCancelled.IsShipped())
}
