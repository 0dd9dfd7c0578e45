package main

import (
	"context"
	"log/slog"
	"os"

	"medi/config"
	"medi/internal/delivery"
	"medi/internal/delivery/http"
	"medi/internal/delivery/http/router/handler"
	"medi/internal/delivery/scheduler"
	"medi/internal/domain/repository"
	"medi/internal/infra/alarm"
	"medi/internal/infra/clock"
	"medi/internal/infra/geocoding"
	logs "medi/internal/infra/log"
	"medi/internal/infra/persistence/memory"
	"medi/internal/infra/persistence/postgres"
	"medi/internal/infra/pubsub"
	"medi/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.New,
			geocoding.New,
			alarm.NewLogSink,
		),
		pubsub.Module,
	)
}

type providerRepoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newProviderRepository serves the directory from PostgreSQL when configured,
// otherwise from the embedded seed data.
func newProviderRepository(params providerRepoParams) (repository.ProviderRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, using in-memory provider directory")

		return memory.NewProviderRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewProviderRepository(db), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProviderRepository,
			memory.NewReminderRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewLocationService,
			impl.NewReminderService,
			impl.NewAlarmService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDirectoryHandler,
			handler.NewLocationHandler,
			handler.NewReminderHandler,
			handler.NewAlarmHandler,
			handler.NewTestHandler,
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
			fx.Annotate(
				scheduler.New,
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
