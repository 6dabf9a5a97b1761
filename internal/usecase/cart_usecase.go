package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemInput is a single line of a cart as submitted by the client. The
// client never supplies a price.
type CartItemInput struct {
	ProductID      uuid.UUID
	Quantity       int
	Customizations map[string]string
}

// CalculateCartInput defines the cart to be priced.
type CalculateCartInput struct {
	Items []CartItemInput
}

// CalculateCartOutput returns the priced lines and the cart total.
type CalculateCartOutput struct {
	Items       []entity.CartItem
	TotalAmount float64
}

// CartUsecase defines the interface for guest cart pricing.
type CartUsecase interface {
	Calculate(ctx context.Context, input *CalculateCartInput) (*CalculateCartOutput, error)
}
