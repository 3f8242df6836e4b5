package main

import (
	"context"
	"log/slog"
	"os"

	"courier/config"
	"courier/internal/infra/auth"
	"courier/internal/infra/clock"
	"courier/internal/infra/geo"
	logs "courier/internal/infra/log"
	"courier/internal/infra/persistence/postgres"
	"courier/internal/transport"
	"courier/internal/transport/http"
	"courier/internal/transport/http/middleware"
	"courier/internal/transport/http/router/handler"
	"courier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Transports []transport.Transport `group:"transports"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectTransport(),
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
			postgres.NewUserRepository,
			postgres.NewVehicleRepository,
			postgres.NewProductRepository,
			postgres.NewDeliveryRepository,
			postgres.NewDeliveryPointRepository,
			postgres.NewPointProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			clock.New,
			geo.NewHaversineCalculator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewVehicleService,
			impl.NewProductService,
			impl.NewDeliveryService,
			impl.NewCourierService,
			impl.NewRouteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewVehicleHandler,
			handler.NewProductHandler,
			handler.NewDeliveryHandler,
			handler.NewCourierHandler,
			handler.NewRouteHandler,
		),
	)
}

func injectTransport() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"transports"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, server := range params.Transports {
		go func() {
			if err := server.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
