// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListProductsInput defines the optional filters for a catalog listing.
type ListProductsInput struct {
	Category   string
	ActiveOnly bool
}

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name            string
	Description     string
	Images          []string
	Category        string
	Subcategory     string
	BasePrice       float64
	Customizations  map[string]entity.CustomizationCategory
	StockQuantity   int
	MinStockLevel   int
	PreparationTime int
	Tags            []string
	NutritionInfo   map[string]any
}

// UpdateProductInput defines a partial product update. Nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	Images          *[]string
	Category        *string
	Subcategory     *string
	BasePrice       *float64
	Customizations  *map[string]entity.CustomizationCategory
	IsActive        *bool
	StockQuantity   *int
	MinStockLevel   *int
	PreparationTime *int
	Tags            *[]string
	NutritionInfo   *map[string]any
}

// CatalogUsecase defines the interface for product catalog operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ToggleProductStatus(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
