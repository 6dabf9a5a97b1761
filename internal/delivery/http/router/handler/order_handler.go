package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/http/response"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for customer order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	Items           []cartItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress addressPayload    `json:"delivery_address"`
	PaymentMethod   string            `json:"payment_method"`
}

// Create handles placing an order from the authenticated customer's cart.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Not authenticated")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.PlaceOrderInput{
		Items:           make([]usecase.CartItemInput, 0, len(req.Items)),
		DeliveryAddress: fromAddressPayload(req.DeliveryAddress),
		PaymentMethod:   req.PaymentMethod,
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id in order")
		}

		input.Items = append(input.Items, usecase.CartItemInput{
			ProductID:      productID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderPayload(order), "Order placed successfully")
}

// List handles fetching the authenticated customer's order history.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Not authenticated")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderPayloads(orders), "Orders retrieved successfully")
}

// Get handles fetching a single order owned by the authenticated customer.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Not authenticated")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderPayload(order), "Order retrieved successfully")
}
