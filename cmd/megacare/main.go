package main

import (
	"context"
	"log/slog"
	"os"

	"megacare/config"
	"megacare/internal/delivery"
	"megacare/internal/delivery/http"
	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/router/handler"
	"megacare/internal/domain/service"
	"megacare/internal/infra/auth/firebase"
	"megacare/internal/infra/auth/line"
	logs "megacare/internal/infra/log"
	"megacare/internal/infra/persistence/firestore"
	"megacare/internal/usecase/impl"

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
		firebase.NewApp,
		firebase.NewAuthClient,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewCustomerRepository,
			firestore.NewEquipmentRepository,
			firestore.NewReportRepository,
			firestore.NewClinicianRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewTokenVerifier,
			firebase.NewTokenMinter,
			line.NewOAuthService,
			service.NewReportAnalyzer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewEquipmentService,
			impl.NewReportService,
			impl.NewLinkingService,
			impl.NewClinicianService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewEquipmentHandler,
			handler.NewReportHandler,
			handler.NewLinkingHandler,
			handler.NewClinicianHandler,
			handler.NewAuthHandler,
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
