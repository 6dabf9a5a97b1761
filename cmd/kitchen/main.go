package main

import (
	"context"
	"log/slog"
	"os"

	"kitchen/config"
	"kitchen/internal/delivery"
	"kitchen/internal/delivery/http"
	"kitchen/internal/delivery/http/middleware"
	"kitchen/internal/delivery/http/router/handler"
	"kitchen/internal/infra/auth"
	logs "kitchen/internal/infra/log"
	"kitchen/internal/infra/otp"
	"kitchen/internal/infra/persistence/mongo"
	"kitchen/internal/infra/storage"
	"kitchen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewProductRepository,
			mongo.NewUserRepository,
			mongo.NewOrderRepository,
			mongo.NewOTPRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCredentialTable,
			auth.NewCustomerTokenService,
			auth.NewAdminTokenService,
			otp.NewGenerator,
			storage.NewLocalImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewOrderService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func seedCatalog(ctx context.Context, params mongo.SeedParams) error {
	return mongo.SeedCatalog(ctx, params)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
