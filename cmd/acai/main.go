package main

import (
	"context"
	"log/slog"
	"os"

	"acai/config"
	"acai/internal/delivery"
	"acai/internal/delivery/api"
	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/router/handler"
	"acai/internal/domain/service"
	"acai/internal/infra/auth"
	"acai/internal/infra/geolocation"
	logs "acai/internal/infra/log"
	"acai/internal/infra/persistence/memory"
	"acai/internal/infra/pubsub"
	"acai/internal/infra/qrcode"
	"acai/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		app(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// app is the dependency graph of the service without the server start.
func app() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			memory.RegisterSeed,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewStoreRepository,
			memory.NewUserRepository,
			memory.NewCatalogRepository,
			memory.NewBowlRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geolocation.NewLocator,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates the store share QR code service from configuration.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	var baseURL string
	if cfg.Marketplace != nil {
		baseURL = cfg.Marketplace.PublicBaseURL
	}
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRSize, defaultQRLevel, baseURL)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, baseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewStoreService,
			impl.NewApprovalService,
			impl.NewCatalogService,
			impl.NewBowlService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewStoreHandler,
			handler.NewApprovalHandler,
			handler.NewCatalogHandler,
			handler.NewBowlHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
