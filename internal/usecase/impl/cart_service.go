package impl

import (
	"context"
	"log/slog"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Calculate prices a cart against the current catalog. Each line's unit
// price is the base price plus the matched customization deltas; the line
// total is unit price times quantity. A single unknown product aborts the
// whole batch, no partial result is returned.
func (srv *cartService) Calculate(ctx context.Context, input *usecase.CalculateCartInput) (*usecase.CalculateCartOutput, error) {
	priced := make([]entity.CartItem, 0, len(input.Items))
	total := 0.0

	for _, item := range input.Items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Cart references unknown product", slog.Any("productID", item.ProductID))

				return nil, domainerrors.ErrProductNotFound.
					WithDetails("product " + item.ProductID.String() + " not found").
					WrapMessage("calculate cart")
			}

			return nil, errors.Wrap(err, "failed to find product for cart")
		}

		linePrice := product.UnitPrice(item.Customizations) * float64(item.Quantity)

		priced = append(priced, entity.CartItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Customizations:  item.Customizations,
			CalculatedPrice: linePrice,
		})
		total += linePrice
	}

	return &usecase.CalculateCartOutput{
		Items:       priced,
		TotalAmount: total,
	}, nil
}
