package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopit/internal/models"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderPending, models.OrderProcessing, true},
		{models.OrderPending, models.OrderShipped, true},
		{models.OrderPending, models.OrderDelivered, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderProcessing, models.OrderShipped, true},
		{models.OrderProcessing, models.OrderCancelled, true},
		{models.OrderShipped, models.OrderDelivered, true},
		{models.OrderShipped, models.OrderCancelled, false},
		{models.OrderShipped, models.OrderPending, false},
		{models.OrderDelivered, models.OrderPending, false},
		{models.OrderDelivered, models.OrderCancelled, false},
		{models.OrderCancelled, models.OrderPending, false},
		{models.OrderCancelled, models.OrderProcessing, false},
		{models.OrderPending, models.OrderPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderPending, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled,
	} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, models.OrderStatus("returned").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Shipped", models.OrderShipped.Label())
	assert.Equal(t, "Cancelled", models.OrderCancelled.Label())
	assert.Equal(t, "", models.OrderStatus("").Label())
}
