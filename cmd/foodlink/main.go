package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"foodlink/config"
	"foodlink/internal/delivery"
	"foodlink/internal/delivery/http"
	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/router/handler"
	"foodlink/internal/domain/service"
	"foodlink/internal/infra/auth"
	logs "foodlink/internal/infra/log"
	"foodlink/internal/infra/notification"
	"foodlink/internal/infra/oracle"
	"foodlink/internal/infra/persistence/postgres"
	"foodlink/internal/infra/pubsub"
	"foodlink/internal/infra/qrcode"
	"foodlink/internal/infra/storage"
	"foodlink/internal/infra/vision"
	"foodlink/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDonationRepository,
			postgres.NewOrganizationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			vision.NewStubTagger,
			storage.New,
			newFirebaseService,
			newQRCodeService,
		),
		oracle.Module,
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push notifications are optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
			impl.NewDonationService,
			impl.NewOrganizationService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDonationHandler,
			handler.NewOrganizationHandler,
			handler.NewStatsHandler,
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
