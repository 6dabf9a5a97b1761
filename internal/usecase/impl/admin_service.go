package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultOrderListLimit caps the console order view when the client does not
// ask for a specific page size.
const defaultOrderListLimit = 50

// adminService implements the AdminUsecase interface.
type adminService struct {
	credentials  service.AdminCredentialStore
	tokenService service.AdminTokenService
	imageStore   service.ImageStore
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Credentials  service.AdminCredentialStore
	TokenService service.AdminTokenService
	ImageStore   service.ImageStore
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		credentials:  params.Credentials,
		tokenService: params.TokenService,
		imageStore:   params.ImageStore,
		productRepo:  params.ProductRepo,
		orderRepo:    params.OrderRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the operator credentials and issues a console session token.
// Unknown usernames and wrong passwords fail identically.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	if !srv.credentials.Verify(input.Username, input.Password) {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login")
	}

	accessToken, err := srv.tokenService.Issue(input.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue admin token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", input.Username))

	return &usecase.AdminLoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Username:    input.Username,
	}, nil
}

// Stats aggregates the dashboard counters in one pass.
func (srv *adminService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	totalProducts, err := srv.productRepo.Count(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	activeProducts, err := srv.productRepo.Count(ctx, repository.ProductFilter{ActiveOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active products")
	}

	totalOrders, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	lowStock, err := srv.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return &usecase.StatsOutput{
		TotalProducts:    totalProducts,
		ActiveProducts:   activeProducts,
		InactiveProducts: totalProducts - activeProducts,
		TotalOrders:      totalOrders,
		TotalUsers:       totalUsers,
		LowStockCount:    len(lowStock),
		LowStockItems:    lowStock,
	}, nil
}

// ListOrders retrieves orders across all customers, optionally narrowed by
// status, newest first.
func (srv *adminService) ListOrders(ctx context.Context, input *usecase.ListAllOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderFilter{Limit: input.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultOrderListLimit
	}

	if input.Status != "" {
		status := entity.OrderStatus(input.Status)
		if !status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "list orders")
		}
		filter.Status = &status
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus sets an order's fulfillment state. Any valid status may
// follow any other; only membership in the enum is checked.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	orderStatus := entity.OrderStatus(status)
	if !orderStatus.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidOrderStatus, "update order status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, orderStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "update order status")
		}
		srv.log(ctx).Error("Failed to update order status", slog.Any("orderID", orderID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID), slog.String("status", status))

	return nil
}

// UploadImage decodes a base64 payload and stores it, returning the public
// URL path. A "data:image/...;base64," prefix is tolerated and stripped.
func (srv *adminService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	payload := input.ImageData
	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImageDecodeFailed, "upload image")
	}

	imageURL, err := srv.imageStore.Save(input.Filename, data)
	if err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("filename", input.Filename), slog.String("url", imageURL))

	return &usecase.UploadImageOutput{ImageURL: imageURL}, nil
}
