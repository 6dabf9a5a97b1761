// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kitchen/internal/delivery/http/middleware"
	"kitchen/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Everything lives under the /api prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/", handler.Root)
	api.GET("/health", handler.HealthCheck)

	// Public catalog reads; catalog mutations require a console token.
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)
	api.POST("/products", r.catalogHandler.CreateProduct, r.authMiddleware.AuthenticateAdmin)
	api.PUT("/products/:id", r.catalogHandler.UpdateProduct, r.authMiddleware.AuthenticateAdmin)
	api.DELETE("/products/:id", r.catalogHandler.DeleteProduct, r.authMiddleware.AuthenticateAdmin)

	// Guest cart pricing, no authentication required.
	api.POST("/cart/calculate", r.cartHandler.Calculate)

	// Passwordless customer auth
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/request-otp", r.authHandler.RequestOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
	}

	// Customer routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.AuthenticateCustomer)
	{
		userGroup.GET("/me", r.profileHandler.GetMe)
		userGroup.PUT("/me", r.profileHandler.UpdateMe)
	}

	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.AuthenticateCustomer)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Console routes; login is open, everything else requires an admin token.
	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login)

	adminGroup.Use(r.authMiddleware.AuthenticateAdmin)
	{
		adminGroup.GET("/verify", r.adminHandler.Verify)

		adminGroup.GET("/products", r.catalogHandler.AdminListProducts)
		adminGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.POST("/products/:id/toggle-status", r.catalogHandler.ToggleProductStatus)

		adminGroup.POST("/upload-image", r.adminHandler.UploadImage)
		adminGroup.GET("/stats", r.adminHandler.Stats)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
