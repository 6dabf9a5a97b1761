package handler

import (
	"log/slog"
	"net/http"

	"kitchen/internal/delivery/http/middleware"
	"kitchen/internal/delivery/http/response"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for console handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required"`
}

type uploadImageRequest struct {
	Filename  string `json:"filename" validate:"required"`
	ImageData string `json:"image_data" validate:"required"`
}

type statsResponse struct {
	TotalProducts    int64            `json:"total_products"`
	ActiveProducts   int64            `json:"active_products"`
	InactiveProducts int64            `json:"inactive_products"`
	TotalOrders      int64            `json:"total_orders"`
	TotalUsers       int64            `json:"total_users"`
	LowStockProducts int              `json:"low_stock_products"`
	LowStockItems    []productPayload `json:"low_stock_items"`
}

// Login handles console authentication.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adminLoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		Username:    output.Username,
	}, "Login successful")
}

// Verify confirms the console token is still valid. The middleware has
// already authenticated; this just echoes the operator identity back.
func (h *AdminHandler) Verify(c echo.Context) error {
	username, _ := c.Get(middleware.KeyAdminUsername).(string)

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":    true,
		"username": username,
	}, "Token is valid")
}

// Stats handles the dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	output, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsResponse{
		TotalProducts:    output.TotalProducts,
		ActiveProducts:   output.ActiveProducts,
		InactiveProducts: output.InactiveProducts,
		TotalOrders:      output.TotalOrders,
		TotalUsers:       output.TotalUsers,
		LowStockProducts: output.LowStockCount,
		LowStockItems:    toProductPayloads(output.LowStockItems),
	}, "Stats retrieved successfully")
}

// ListOrders handles the console order view across all customers.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListAllOrdersInput{Status: c.QueryParam("status")}
	if err := echo.QueryParamsBinder(c).Int64("limit", &input.Limit).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderPayloads(orders), "Orders retrieved successfully")
}

// UpdateOrderStatus handles setting an order's fulfillment state.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "ORDER_NOT_FOUND", "Order not found")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, req.OrderStatus); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order status updated successfully"}, "Order status updated successfully")
}

// UploadImage handles storing a base64-encoded product image.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:  req.Filename,
		ImageData: req.ImageData,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"image_url": output.ImageURL,
		"message":   "Image uploaded successfully",
	}, "Image uploaded successfully")
}
