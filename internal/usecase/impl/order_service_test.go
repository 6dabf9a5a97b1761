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

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockOrderRepo
	productRepo *mockProductRepo
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := new(mockOrderRepo)
	productRepo := new(mockProductRepo)
	cart := &cartService{
		productRepo: productRepo,
		logger:      testLogger(),
	}
	service := &orderService{
		orderRepo: orderRepo,
		cart:      cart,
		logger:    testLogger(),
	}

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestOrderService_PlaceOrder_RepricesServerSide(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(dalMakhani(productID), nil)

	var stored *entity.Order
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.Order)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		Items: []usecase.CartItemInput{
			{
				ProductID:      productID,
				Quantity:       2,
				Customizations: map[string]string{"serving_size": "Large"},
			},
		},
		DeliveryAddress: usecase.AddressInput{
			Street:     "12 MG Road",
			City:       "Bengaluru",
			PostalCode: "560001",
		},
	})
	require.NoError(t, err)

	// The catalog price wins regardless of anything the client claims.
	assert.InDelta(t, 598.0, order.TotalAmount, 1e-9)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 598.0, order.Items[0].CalculatedPrice, 1e-9)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPlaced, order.OrderStatus)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	require.NotNil(t, stored)
	assert.Equal(t, order.ID, stored.ID)
}

func TestOrderService_PlaceOrder_DefaultsToCashOnDelivery(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(dalMakhani(productID), nil)
	fx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Items: []usecase.CartItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
}

func TestOrderService_PlaceOrder_UnknownProductRejectsOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Items: []usecase.CartItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	fx.orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_GetOrder_OwnershipMismatchReportsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	fx.orderRepo.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: owner}, nil)

	_, err := fx.service.GetOrder(ctx, stranger, orderID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_GetOrder_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	owner := uuid.New()
	fx.orderRepo.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: owner}, nil)

	order, err := fx.service.GetOrder(ctx, owner, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.orderRepo.On("ListByUser", ctx, userID).
		Return([]*entity.Order{{ID: uuid.New(), UserID: userID}}, nil)

	orders, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
