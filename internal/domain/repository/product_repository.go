// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings. A nil Category means no category
// filter; ActiveOnly false returns inactive products too.
type ProductFilter struct {
	Category   *entity.Category
	ActiveOnly bool
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product; returns ErrProductNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// ListLowStock retrieves products whose stock count is at or below their
	// configured minimum threshold.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
