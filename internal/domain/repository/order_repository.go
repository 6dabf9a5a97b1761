package repository

import (
	"context"
	"errors"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. A nil Status means no status filter;
// Limit caps the number of results, newest first.
type OrderFilter struct {
	Status *entity.OrderStatus
	Limit  int64
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders owned by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the order status and bumps the modification timestamp.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)
}
