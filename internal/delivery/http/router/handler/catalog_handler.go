// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kitchen/internal/delivery/http/response"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name                 string                                  `json:"name" validate:"required"`
	Description          string                                  `json:"description"`
	Images               []string                                `json:"images"`
	Category             string                                  `json:"category" validate:"required"`
	Subcategory          string                                  `json:"subcategory"`
	BasePrice            float64                                 `json:"base_price" validate:"gte=0"`
	CustomizationOptions map[string]customizationCategoryPayload `json:"customization_options"`
	StockQuantity        int                                     `json:"stock_quantity" validate:"gte=0"`
	MinStockLevel        int                                     `json:"min_stock_level" validate:"gte=0"`
	PreparationTime      int                                     `json:"preparation_time" validate:"gte=0"`
	Tags                 []string                                `json:"tags"`
	NutritionInfo        map[string]any                          `json:"nutrition_info"`
}

type updateProductRequest struct {
	Name                 *string                                  `json:"name"`
	Description          *string                                  `json:"description"`
	Images               *[]string                                `json:"images"`
	Category             *string                                  `json:"category"`
	Subcategory          *string                                  `json:"subcategory"`
	BasePrice            *float64                                 `json:"base_price"`
	CustomizationOptions *map[string]customizationCategoryPayload `json:"customization_options"`
	IsActive             *bool                                    `json:"is_active"`
	StockQuantity        *int                                     `json:"stock_quantity"`
	MinStockLevel        *int                                     `json:"min_stock_level"`
	PreparationTime      *int                                     `json:"preparation_time"`
	Tags                 *[]string                                `json:"tags"`
	NutritionInfo        *map[string]any                          `json:"nutrition_info"`
}

// productID parses the :id path parameter.
func productID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// queryBool parses a boolean query parameter with a default.
func queryBool(c echo.Context, name string, fallback bool) bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return value
}

// ListProducts handles the public catalog listing. Inactive products are
// hidden unless active_only=false is passed explicitly.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return h.list(c, true)
}

// AdminListProducts handles the console catalog listing, which shows
// inactive products by default.
func (h *CatalogHandler) AdminListProducts(c echo.Context) error {
	return h.list(c, false)
}

func (h *CatalogHandler) list(c echo.Context, activeOnlyDefault bool) error {
	input := &usecase.ListProductsInput{
		Category:   c.QueryParam("category"),
		ActiveOnly: queryBool(c, "active_only", activeOnlyDefault),
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayloads(products), "Products retrieved successfully")
}

// GetProduct handles fetching a single product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, ok := productID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayload(product), "Product retrieved successfully")
}

// CreateProduct handles creating a new catalog entry.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Images:          req.Images,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		BasePrice:       req.BasePrice,
		Customizations:  fromCustomizationPayloads(req.CustomizationOptions),
		StockQuantity:   req.StockQuantity,
		MinStockLevel:   req.MinStockLevel,
		PreparationTime: req.PreparationTime,
		Tags:            req.Tags,
		NutritionInfo:   req.NutritionInfo,
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductPayload(product), "Product created successfully")
}

// UpdateProduct handles a partial product update.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, ok := productID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	input := &usecase.UpdateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Images:          req.Images,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		BasePrice:       req.BasePrice,
		IsActive:        req.IsActive,
		StockQuantity:   req.StockQuantity,
		MinStockLevel:   req.MinStockLevel,
		PreparationTime: req.PreparationTime,
		Tags:            req.Tags,
		NutritionInfo:   req.NutritionInfo,
	}
	if req.CustomizationOptions != nil {
		customizations := fromCustomizationPayloads(*req.CustomizationOptions)
		input.Customizations = &customizations
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductPayload(product), "Product updated successfully")
}

// DeleteProduct handles removing a product from the catalog.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, ok := productID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"}, "Product deleted successfully")
}

// ToggleProductStatus handles flipping a product's active flag.
func (h *CatalogHandler) ToggleProductStatus(c echo.Context) error {
	id, ok := productID(c)
	if !ok {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Product not found")
	}

	product, err := h.uc.ToggleProductStatus(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Product deactivated successfully"
	if product.IsActive {
		message = "Product activated successfully"
	}

	return response.Success(c, http.StatusOK, toProductPayload(product), message)
}
