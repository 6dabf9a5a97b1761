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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	cart      usecase.CartUsecase
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Cart      usecase.CartUsecase
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		cart:      params.Cart,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the submitted cart against the current catalog and
// persists the order. Client-supplied prices are never trusted; the line
// totals and the order total always come from the server-side calculation.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	priced, err := srv.cart.Calculate(ctx, &usecase.CalculateCartInput{Items: input.Items})
	if err != nil {
		return nil, errors.Wrap(err, "failed to price order items")
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCOD
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Items:       priced.Items,
		TotalAmount: priced.TotalAmount,
		DeliveryAddress: entity.Address{
			Label:      input.DeliveryAddress.Label,
			Street:     input.DeliveryAddress.Street,
			City:       input.DeliveryAddress.City,
			State:      input.DeliveryAddress.State,
			PostalCode: input.DeliveryAddress.PostalCode,
			Phone:      input.DeliveryAddress.Phone,
		},
		PaymentMethod: paymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
		OrderStatus:   entity.OrderStatusPlaced,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID), slog.Any("userID", userID), slog.Float64("total", order.TotalAmount))

	return order, nil
}

// ListOrders retrieves the customer's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves a single order owned by the customer. Orders belonging
// to other customers are reported as not found, never as forbidden.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "get order")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "get order")
	}

	return order, nil
}
