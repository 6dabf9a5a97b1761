package impl

import (
	"context"
	"testing"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockProductRepo
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	productRepo := new(mockProductRepo)
	service := &catalogService{
		productRepo: productRepo,
		logger:      testLogger(),
	}

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_InvalidCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		Category: "seafood",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CATEGORY", appErr.ErrorCode())
	fx.productRepo.AssertNotCalled(t, "List")
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vegan := entity.CategoryVegan
	fx.productRepo.On("List", ctx, repository.ProductFilter{Category: &vegan, ActiveOnly: true}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Category:   "vegan",
		ActiveOnly: true,
	})
	require.NoError(t, err)
	assert.Empty(t, products)
	fx.productRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_StartsActive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:      "Masala Dosa",
		Category:  "vegan",
		BasePrice: 149.0,
	})
	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, entity.CategoryVegan, product.Category)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCatalogService_CreateProduct_RejectsUnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     "Butter Chicken",
		Category: "non-vegetarian",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CATEGORY", appErr.ErrorCode())
	fx.productRepo.AssertNotCalled(t, "Create")
}

func TestCatalogService_UpdateProduct_PartialUpdate(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := dalMakhani(productID)

	fx.productRepo.On("FindByID", ctx, productID).Return(existing, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	newPrice := 269.0
	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
		BasePrice: &newPrice,
	})
	require.NoError(t, err)

	// Only the priced field moves; everything else stays.
	assert.InDelta(t, 269.0, product.BasePrice, 1e-9)
	assert.Equal(t, "Dal Makhani", product.Name)
	assert.Equal(t, entity.CategoryVegetarian, product.Category)
	assert.False(t, product.UpdatedAt.IsZero())
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_ToggleProductStatus_TwiceRestoresState(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := dalMakhani(productID)
	require.True(t, existing.IsActive)

	fx.productRepo.On("FindByID", ctx, productID).Return(existing, nil)
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	first, err := fx.service.ToggleProductStatus(ctx, productID)
	require.NoError(t, err)
	assert.False(t, first.IsActive)

	second, err := fx.service.ToggleProductStatus(ctx, productID)
	require.NoError(t, err)
	assert.True(t, second.IsActive)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("Delete", ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
