package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mybalance/internal/api"
	"mybalance/internal/api/handlers"
	"mybalance/internal/repository"
	"mybalance/internal/service"
	"mybalance/pkg/auth"
	"mybalance/pkg/config"
	"mybalance/pkg/logger"
	"mybalance/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title MyBalance API
// @version 1.0
// @description Personal finance tracker: income, expenses, savings and summaries

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting MyBalance service", zap.String("env", cfg.Env))

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(&cfg.Database, appLogger); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	savingsRepo := repository.NewSavingsRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	incomeService := service.NewIncomeService(incomeRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, appLogger)
	savingsService := service.NewSavingsService(savingsRepo, appLogger)
	summaryService := service.NewSummaryService(incomeRepo, expenseRepo, savingsRepo, appLogger)

	expose := cfg.Server.ExposeErrorDetails
	app := api.SetupRouter(api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, appLogger),
		Dashboard: handlers.NewDashboardHandler(summaryService, expose, appLogger),
		Income:    handlers.NewIncomeHandler(incomeService, expose, appLogger),
		Expense:   handlers.NewExpenseHandler(expenseService, expose, appLogger),
		Savings:   handlers.NewSavingsHandler(savingsService, expose, appLogger),
		Health:    handlers.NewHealthHandler(db, appLogger),
	}, jwtManager, cfg, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
