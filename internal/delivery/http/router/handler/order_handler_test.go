package handler

import (
	"testing"

	"kitchen/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderItem() cartItemRequest {
	return cartItemRequest{
		ProductID: uuid.New().String(),
		Quantity:  1,
	}
}

func TestPlaceOrderRequest_Validation(t *testing.T) {
	v := validator.New()

	valid := placeOrderRequest{Items: []cartItemRequest{validOrderItem()}}
	require.NoError(t, v.Validate(&valid))

	zeroQty := validOrderItem()
	zeroQty.Quantity = 0
	negativeQty := validOrderItem()
	negativeQty.Quantity = -3
	badID := validOrderItem()
	badID.ProductID = "not-a-uuid"

	tests := []struct {
		name string
		req  placeOrderRequest
	}{
		{name: "missing items", req: placeOrderRequest{}},
		{name: "empty items", req: placeOrderRequest{Items: []cartItemRequest{}}},
		{name: "zero quantity", req: placeOrderRequest{Items: []cartItemRequest{zeroQty}}},
		{name: "negative quantity", req: placeOrderRequest{Items: []cartItemRequest{negativeQty}}},
		{name: "malformed product id", req: placeOrderRequest{Items: []cartItemRequest{badID}}},
		{name: "one bad line fails the batch", req: placeOrderRequest{Items: []cartItemRequest{validOrderItem(), negativeQty}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Per-line rules must run for order placement exactly as they
			// do on the cart route.
			assert.Error(t, v.Validate(&tt.req))
		})
	}
}
