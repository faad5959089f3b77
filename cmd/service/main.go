package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "lastmile/internal/app"
	"lastmile/internal/handlers/rest/candidates_get"
	"lastmile/internal/handlers/rest/courier_get"
	"lastmile/internal/handlers/rest/courier_post"
	"lastmile/internal/handlers/rest/courier_put"
	"lastmile/internal/handlers/rest/couriers_get"
	"lastmile/internal/handlers/rest/deliveries_get"
	"lastmile/internal/handlers/rest/delivery_accept_post"
	"lastmile/internal/handlers/rest/delivery_cancel_post"
	"lastmile/internal/handlers/rest/delivery_get"
	"lastmile/internal/handlers/rest/delivery_post"
	"lastmile/internal/handlers/rest/delivery_status_post"
	"lastmile/internal/handlers/rest/delivery_tasks_get"
	"lastmile/internal/handlers/rest/healthcheck_head"
	"lastmile/internal/handlers/rest/payment_callback_post"
	"lastmile/internal/handlers/rest/payment_get"
	"lastmile/internal/handlers/rest/payout_action_post"
	"lastmile/internal/handlers/rest/payout_post"
	"lastmile/internal/handlers/rest/payouts_get"
	"lastmile/internal/handlers/rest/ping_get"
	"lastmile/internal/handlers/rest/quote_get"
	"lastmile/internal/handlers/rest/referral_policy_post"
	"lastmile/internal/handlers/rest/referral_post"
	"lastmile/internal/handlers/rest/settlement_confirm_post"
	"lastmile/internal/handlers/rest/wallet_get"
	"lastmile/internal/pkg/config"
	"lastmile/internal/pkg/dotenv"
	"lastmile/internal/pkg/grpcclient"
	"lastmile/internal/pkg/kafka"
	metrics_system "lastmile/internal/pkg/metrics"
	"lastmile/internal/pkg/middlewares/graceful_shutdown"
	"lastmile/internal/pkg/middlewares/metrics"
	"lastmile/internal/pkg/middlewares/rate_limiter"
	"lastmile/internal/pkg/middlewares/timeout"
	"lastmile/internal/pkg/migrations"
	"lastmile/internal/pkg/postgres"
	"lastmile/internal/pkg/rabbitmq"
	"lastmile/pkg/logger"
	"lastmile/pkg/logger/zap_adapter"
	"lastmile/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting lastmile application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.PaymentGateway)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		_ = producer.Close()
	}()

	publisher, err := rabbitmq.NewProducer(ctx, log, &cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq producer: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			runLog.Error("failed to close RabbitMQ connection",
				logger.NewField("error", err),
			)
		}
	}()

	// фоновые задачи живут, пока не пришел сигнал остановки
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, cfg.Metrics.CollectInterval, metrics_system.PgxPoolSource(pool))

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()

	businessApp.BackgroundWorkers.Wait()
	businessApp.ServiceDelivery.Wait()

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx, cfg.ShutdownRetryAfter))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	if cfg.ClientRateLimitQPS > 0 {
		registry := token_bucket.NewRegistry(cfg.ClientRateLimitQPS, cfg.ClientRateLimitRate, cfg.ClientRateLimitKeys)
		router.Use(rate_limiter.ClientMiddleware(log, cfg.ClientRateLimitQPS, registry))
	}
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	courierPut := courier_put.New(log, app.ServiceCourier)
	router.Handle("/courier/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/courier", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	router.Handle("/courier", courierPut).Methods("PUT")
	router.Handle("/courier/{id}", courierPut).Methods("PUT")

	router.Handle("/quote", quote_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/{id}/candidates", candidates_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/{id}/accept", delivery_accept_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/{id}/status", delivery_status_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/{id}/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/{id}/tasks", delivery_tasks_get.New(log, app.ServiceCompletion)).Methods("GET")

	router.Handle("/payment/{id}", payment_get.New(log, app.ServiceLedger)).Methods("GET")
	router.Handle("/payment/{id}/callback", payment_callback_post.New(log, app.ServiceLedger)).Methods("POST")

	router.Handle("/settlement/{id}/confirm", settlement_confirm_post.New(log, app.ServiceWallet)).Methods("POST")
	router.Handle("/wallet/{courier_id}", wallet_get.New(log, app.ServiceWallet)).Methods("GET")
	router.Handle("/wallet/{courier_id}/payouts", payouts_get.New(log, app.ServiceWallet)).Methods("GET")
	router.Handle("/payout", payout_post.New(log, app.ServiceWallet)).Methods("POST")
	router.Handle("/payout/{id}/{action}", payout_action_post.New(log, app.ServiceWallet)).Methods("POST")

	router.Handle("/referral", referral_post.New(log, app.ServiceReferral)).Methods("POST")
	router.Handle("/referral/policy", referral_policy_post.New(log, app.ServiceReferral)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
