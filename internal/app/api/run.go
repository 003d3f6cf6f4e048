package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	pizzaserver "github.com/Apurer/go-gin-pizza-api/go"
	catalogmemory "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/adapters/memory"
	catalogports "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/ports"
	ordersmemory "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-pizza-api/internal/jobs"
	platformobservability "github.com/Apurer/go-gin-pizza-api/internal/platform/observability"
)

const serviceName = "pizzeria-api"

// Run boots the pizzeria HTTP API and blocks until ctx is cancelled or the
// server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalog := catalogmemory.NewCatalog()
	orderService := ordersobs.New(
		ordersapp.NewService(ordersmemory.NewRepository(), catalog),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	if cfg.BacklogReportDisabled {
		logger.Info("Backlog report job disabled")
	} else {
		backlog := jobs.NewBacklogReportJob(orderService, cfg.BacklogReportSchedule, logger, instruments.Meter("internal.jobs"))
		if err := backlog.Start(); err != nil {
			return err
		}
		defer backlog.Stop()
	}

	gin.SetMode(cfg.GinMode)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(catalog, orderService),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, server, cfg.ShutdownTimeout, logger)
}

// NewRouter assembles the gin engine with recovery and tracing middleware.
func NewRouter(catalog catalogports.Catalog, orders ordersports.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return pizzaserver.NewRouterWithGinEngine(router, pizzaserver.ApiHandleFunctions{
		CatalogAPI:       pizzaserver.NewCatalogAPI(catalog),
		CustomerOrderAPI: pizzaserver.NewCustomerOrderAPI(orders),
		ManageOrderAPI:   pizzaserver.NewManageOrderAPI(orders),
	})
}

func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Pizzeria API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Pizzeria API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("Pizzeria API shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
