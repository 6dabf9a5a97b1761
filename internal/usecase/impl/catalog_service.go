// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves the catalog, optionally narrowed by category and
// activity.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{ActiveOnly: input.ActiveOnly}

	if input.Category != "" {
		category := entity.Category(input.Category)
		if !category.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "list products")
		}
		filter.Category = &category
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// CreateProduct persists a new catalog entry. New products start active.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategory, "create product")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		Images:          input.Images,
		Category:        category,
		Subcategory:     input.Subcategory,
		BasePrice:       input.BasePrice,
		Customizations:  input.Customizations,
		IsActive:        true,
		StockQuantity:   input.StockQuantity,
		MinStockLevel:   input.MinStockLevel,
		PreparationTime: input.PreparationTime,
		Tags:            input.Tags,
		NutritionInfo:   input.NutritionInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a partial update to an existing product and returns
// the updated entity. Nil input fields leave the stored value untouched.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if err := applyProductUpdate(product, input); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return errors.Wrap(domainerrors.ErrInvalidCategory, "update product")
		}
		product.Category = category
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Subcategory != nil {
		product.Subcategory = *input.Subcategory
	}
	if input.BasePrice != nil {
		product.BasePrice = *input.BasePrice
	}
	if input.Customizations != nil {
		product.Customizations = *input.Customizations
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.MinStockLevel != nil {
		product.MinStockLevel = *input.MinStockLevel
	}
	if input.PreparationTime != nil {
		product.PreparationTime = *input.PreparationTime
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.NutritionInfo != nil {
		product.NutritionInfo = *input.NutritionInfo
	}

	return nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete product")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// ToggleProductStatus flips the product's active flag and returns the
// updated entity. Toggling twice restores the original state.
func (srv *catalogService) ToggleProductStatus(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "toggle product status")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	product.IsActive = !product.IsActive
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to toggle product status", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to toggle product status")
	}

	srv.log(ctx).Info("Product status toggled",
		slog.Any("productID", id), slog.Bool("isActive", product.IsActive))

	return product, nil
}
