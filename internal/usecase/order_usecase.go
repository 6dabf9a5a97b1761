package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place an order. Line prices
// are recomputed from the catalog, never taken from the client.
type PlaceOrderInput struct {
	Items           []CartItemInput
	DeliveryAddress AddressInput
	PaymentMethod   string
}

// OrderUsecase defines the interface for customer order operations.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
