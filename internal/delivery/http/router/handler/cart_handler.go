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

// CartHandler holds dependencies for cart pricing handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type cartItemRequest struct {
	ProductID      string            `json:"product_id" validate:"required,uuid"`
	Quantity       int               `json:"quantity" validate:"required,gt=0"`
	Customizations map[string]string `json:"customizations"`
}

type cartResponse struct {
	Items       []cartItemPayload `json:"items"`
	TotalAmount float64           `json:"total_amount"`
}

// Calculate prices a guest cart. The body is a bare JSON array of items.
func (h *CartHandler) Calculate(c echo.Context) error {
	var items []cartItemRequest
	if err := c.Bind(&items); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	input := &usecase.CalculateCartInput{Items: make([]usecase.CartItemInput, 0, len(items))}
	for _, item := range items {
		if err := c.Validate(&item); err != nil {
			return errors.WithStack(err)
		}

		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id in cart")
		}

		input.Items = append(input.Items, usecase.CartItemInput{
			ProductID:      productID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	output, err := h.uc.Calculate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartResponse{
		Items:       toCartItemPayloads(output.Items),
		TotalAmount: output.TotalAmount,
	}, "Cart calculated successfully")
}
