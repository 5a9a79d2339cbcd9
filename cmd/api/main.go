package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mfekete/backoffice-backend/api/routes"
	"github.com/mfekete/backoffice-backend/internal/auth"
	"github.com/mfekete/backoffice-backend/internal/dashboard"
	"github.com/mfekete/backoffice-backend/internal/expenses"
	"github.com/mfekete/backoffice-backend/internal/incomes"
	"github.com/mfekete/backoffice-backend/internal/orders"
	"github.com/mfekete/backoffice-backend/internal/products"
	"github.com/mfekete/backoffice-backend/internal/shifts"
	"github.com/mfekete/backoffice-backend/internal/stores"
	"github.com/mfekete/backoffice-backend/internal/users"
	"github.com/mfekete/backoffice-backend/internal/workers"
	"github.com/mfekete/backoffice-backend/pkg/config"
	"github.com/mfekete/backoffice-backend/pkg/db"
	"github.com/mfekete/backoffice-backend/pkg/logger"
	"github.com/mfekete/backoffice-backend/pkg/metrics"
	"github.com/mfekete/backoffice-backend/pkg/migrate"
	"github.com/mfekete/backoffice-backend/pkg/outbox"
	"github.com/mfekete/backoffice-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	gdb := dbClient.DB()
	outboxService := outbox.NewService(outbox.NewRepository(gdb), logg)

	authService, err := auth.NewService(users.NewRepository(gdb), cfg.JWT)
	exitOnErr(logg, "auth service", err)

	storeService, err := stores.NewService(stores.NewRepository(gdb))
	exitOnErr(logg, "store service", err)

	productService, err := products.NewService(products.NewRepository(gdb))
	exitOnErr(logg, "product service", err)

	orderService, err := orders.NewService(orders.NewRepository(gdb), dbClient, outboxService, m)
	exitOnErr(logg, "order service", err)

	workerService, err := workers.NewService(workers.NewRepository(gdb))
	exitOnErr(logg, "worker service", err)

	shiftService, err := shifts.NewService(shifts.NewRepository(gdb), dbClient, outboxService, m)
	exitOnErr(logg, "shift service", err)

	incomeService, err := incomes.NewService(incomes.NewRepository(gdb))
	exitOnErr(logg, "income service", err)

	expenseService, err := expenses.NewService(expenses.NewRepository(gdb))
	exitOnErr(logg, "expense service", err)

	dashboardService, err := dashboard.NewService(dashboard.NewRepository(gdb), cfg.Dashboard.LowStockThreshold)
	exitOnErr(logg, "dashboard service", err)

	handler := routes.NewRouter(cfg, logg, dbClient, redisClient, registry, m, routes.Services{
		Auth:      authService,
		Stores:    storeService,
		Products:  productService,
		Orders:    orderService,
		Workers:   workerService,
		Shifts:    shiftService,
		Incomes:   incomeService,
		Expenses:  expenseService,
		Dashboard: dashboardService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "api server stopped")
	}
}

func exitOnErr(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+name, err)
	os.Exit(1)
}
