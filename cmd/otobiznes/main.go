package main

import (
	"context"
	"log/slog"
	"os"

	"otobiznes/config"
	"otobiznes/internal/delivery"
	"otobiznes/internal/delivery/http"
	"otobiznes/internal/delivery/http/middleware"
	"otobiznes/internal/delivery/http/router/handler"
	"otobiznes/internal/domain/service"
	"otobiznes/internal/infra/api"
	logs "otobiznes/internal/infra/log"
	"otobiznes/internal/infra/qrcode"
	"otobiznes/internal/infra/session"
	"otobiznes/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		session.NewRedisClient,
		api.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthService,
			api.NewAdService,
			api.NewBusinessService,
			api.NewCategoryService,
			api.NewReviewService,
			api.NewUserService,
			session.NewTokenStore,
			session.NewCookieSigner,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewAccountService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
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
