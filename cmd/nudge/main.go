package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"nudge/config"
	"nudge/internal/delivery"
	"nudge/internal/delivery/api"
	"nudge/internal/delivery/api/middleware"
	"nudge/internal/delivery/api/router/handler"
	"nudge/internal/delivery/scheduler"
	"nudge/internal/infra/auth"
	logs "nudge/internal/infra/log"
	"nudge/internal/infra/metrics"
	"nudge/internal/infra/notification"
	"nudge/internal/infra/persistence/postgres"
	"nudge/internal/infra/pubsub"
	"nudge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		metrics.NewRegistry,
		metrics.NewCollectors,
		metrics.AsObserver,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPushSubscriptionRepository,
			postgres.NewPreferenceRepository,
			postgres.NewRelationshipRepository,
			postgres.NewRuleRepository,
			postgres.NewDispatchRecordRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeliveryEngine,
			impl.NewDispatchService,
			impl.NewSubscriptionService,
			impl.NewRuleService,
			impl.NewAnnouncementService,
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
			handler.NewDispatchHandler,
			handler.NewSubscriptionHandler,
			handler.NewRuleHandler,
			handler.NewAnnouncementHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
