package main

import (
	"context"
	"log/slog"
	"os"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/api"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/domain/service"
	"guardian/internal/infra/auth"
	"guardian/internal/infra/geocoding"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/notification"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/infra/pubsub"
	"guardian/internal/infra/redis"
	"guardian/internal/infra/scheduler"
	"guardian/internal/usecase"
	"guardian/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type orchestratorParams struct {
	fx.In

	Ledger     usecase.AlertLedger
	Directory  usecase.ContactDirectory
	Dispatcher usecase.ChannelDispatcher
	Locations  usecase.LocationResolver
	Geocoder   service.Geocoder
	Publisher  service.EventPublisher
	Metrics    service.DispatchMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

type drainParams struct {
	fx.In
	fx.Lifecycle

	Orchestrator usecase.AlertOrchestrator
	Timers       usecase.SafetyTimerEngine
	Logger       *slog.Logger
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
			registerDrain,
			startSweeper,
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
		redis.New,
		metrics.NewCollector,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewContactRepository,
			postgres.NewDeviceRepository,
			postgres.NewAlertRepository,
			postgres.NewTimerRepository,
			postgres.NewSMSLogRepository,
			postgres.NewTransactionManager,
			redis.NewLiveAlertStore,
			redis.NewLocationStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			geocoding.NewOpenCageGeocoder,
			newDispatchMetrics,
		),
	)
}

// newDispatchMetrics exposes the Prometheus collector to the use cases
func newDispatchMetrics(collector *metrics.Collector) service.DispatchMetrics {
	return collector
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContactService,
			impl.NewDispatcher,
			impl.NewAlertLedger,
			newAlertOrchestrator,
			impl.NewTimerService,
			impl.NewLocationService,
			impl.NewDeviceService,
			impl.NewProfileService,
			impl.NewSMSLogService,
			newOverdueExpirer,
		),
	)
}

func newAlertOrchestrator(params orchestratorParams) usecase.AlertOrchestrator {
	return impl.NewAlertOrchestrator(impl.OrchestratorParams{
		Ledger:     params.Ledger,
		Directory:  params.Directory,
		Dispatcher: params.Dispatcher,
		Locations:  params.Locations,
		Geocoder:   params.Geocoder,
		Publisher:  params.Publisher,
		Metrics:    params.Metrics,
		Config:     params.Config,
		Logger:     params.Logger,
	})
}

func newOverdueExpirer(engine usecase.SafetyTimerEngine) scheduler.OverdueExpirer {
	return engine
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
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewContactHandler,
			handler.NewAlertHandler,
			handler.NewTimerHandler,
			handler.NewSMSLogHandler,
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
			scheduler.New,
		),
	)
}

// registerDrain stops new alerts and waits for running fan-outs. It is invoked
// before the server so that its hook runs after the server has stopped.
func registerDrain(params drainParams) {
	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Timers.Stop()

			if err := params.Orchestrator.Shutdown(ctx); err != nil {
				params.Logger.Error("Alert fan-out did not finish before shutdown", slog.Any("error", err))

				return err
			}

			return nil
		},
	})
}

func startSweeper(*scheduler.TimerSweeper) {}

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
