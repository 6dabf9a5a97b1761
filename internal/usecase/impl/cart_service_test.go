package impl

import (
	"context"
	"testing"

	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	productRepo *mockProductRepo
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	productRepo := new(mockProductRepo)
	service := &cartService{
		productRepo: productRepo,
		logger:      testLogger(),
	}

	return cartServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCartService_Calculate_CustomizedLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(dalMakhani(productID), nil)

	output, err := fx.service.Calculate(ctx, &usecase.CalculateCartInput{
		Items: []usecase.CartItemInput{
			{
				ProductID: productID,
				Quantity:  2,
				Customizations: map[string]string{
					"spice_level":  "Spicy",
					"serving_size": "Large",
				},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, output.Items, 1)

	// 249 base + 50 large, times two.
	assert.InDelta(t, 598.0, output.Items[0].CalculatedPrice, 1e-9)
	assert.InDelta(t, 598.0, output.TotalAmount, 1e-9)
}

func TestCartService_Calculate_EmptySelectionUsesBasePrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(dalMakhani(productID), nil)

	output, err := fx.service.Calculate(ctx, &usecase.CalculateCartInput{
		Items: []usecase.CartItemInput{
			{ProductID: productID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 249.0, output.TotalAmount, 1e-9)
}

func TestCartService_Calculate_UnmatchedSelectionIgnored(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(dalMakhani(productID), nil)

	output, err := fx.service.Calculate(ctx, &usecase.CalculateCartInput{
		Items: []usecase.CartItemInput{
			{
				ProductID: productID,
				Quantity:  1,
				Customizations: map[string]string{
					"serving_size": "Extra Large", // unknown option
					"toppings":     "Cheese",      // unknown category
				},
			},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 249.0, output.TotalAmount, 1e-9)
}

func TestCartService_Calculate_UnknownProductAbortsBatch(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	knownID := uuid.New()
	unknownID := uuid.New()
	fx.productRepo.On("FindByID", ctx, knownID).Return(dalMakhani(knownID), nil)
	fx.productRepo.On("FindByID", ctx, unknownID).Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.Calculate(ctx, &usecase.CalculateCartInput{
		Items: []usecase.CartItemInput{
			{ProductID: knownID, Quantity: 1},
			{ProductID: unknownID, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_Calculate_MultipleLinesSummed(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()
	fx.productRepo.On("FindByID", ctx, firstID).Return(dalMakhani(firstID), nil)
	fx.productRepo.On("FindByID", ctx, secondID).Return(dalMakhani(secondID), nil)

	output, err := fx.service.Calculate(ctx, &usecase.CalculateCartInput{
		Items: []usecase.CartItemInput{
			{ProductID: firstID, Quantity: 1},
			{ProductID: secondID, Quantity: 3, Customizations: map[string]string{"serving_size": "Large"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, output.Items, 2)

	// 249 + 3×299
	assert.InDelta(t, 249.0, output.Items[0].CalculatedPrice, 1e-9)
	assert.InDelta(t, 897.0, output.Items[1].CalculatedPrice, 1e-9)
	assert.InDelta(t, 1146.0, output.TotalAmount, 1e-9)
}
