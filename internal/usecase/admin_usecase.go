package usecase

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminLoginInput defines the credentials for a console login.
type AdminLoginInput struct {
	Username string
	Password string
}

// AdminLoginOutput returns the console session token after a successful login.
type AdminLoginOutput struct {
	AccessToken string
	TokenType   string
	Username    string
}

// ListAllOrdersInput defines the optional filters for the console order view.
type ListAllOrdersInput struct {
	Status string
	Limit  int64
}

// UploadImageInput defines a base64-encoded image to be stored.
type UploadImageInput struct {
	Filename  string
	ImageData string
}

// UploadImageOutput returns the public URL path of the stored image.
type UploadImageOutput struct {
	ImageURL string
}

// StatsOutput aggregates the dashboard counters.
type StatsOutput struct {
	TotalProducts    int64
	ActiveProducts   int64
	InactiveProducts int64
	TotalOrders      int64
	TotalUsers       int64
	LowStockCount    int
	LowStockItems    []*entity.Product
}

// AdminUsecase defines the interface for console operations.
type AdminUsecase interface {
	Login(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)
	Stats(ctx context.Context) (*StatsOutput, error)
	ListOrders(ctx context.Context, input *ListAllOrdersInput) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
}
