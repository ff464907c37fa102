package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"mybalance/internal/dto"
	"mybalance/internal/models"
	"mybalance/internal/repository"
	"mybalance/internal/service"
	"mybalance/pkg/auth"
	"mybalance/pkg/config"
	"mybalance/pkg/logger"
	"mybalance/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultSeedEmail    = "demo@mybalance.local"
	defaultSeedPassword = "demo12345"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	authService := service.NewAuthService(repository.NewUserRepository(db, appLogger), jwtManager, appLogger)
	incomes := service.NewIncomeService(repository.NewIncomeRepository(db, appLogger), appLogger)
	expenses := service.NewExpenseService(repository.NewExpenseRepository(db, appLogger), appLogger)
	savings := service.NewSavingsService(repository.NewSavingsRepository(db, appLogger), appLogger)

	appLogger.Info("Starting database seeding...")

	userID, created, err := ensureDemoUser(ctx, authService)
	if err != nil {
		appLogger.Fatal("Failed to prepare demo user", zap.Error(err))
	}
	if !created {
		appLogger.Info("Demo user already exists, skipping transactions", zap.Int64("user_id", userID))
		return
	}

	if err := seedTransactions(ctx, userID, time.Now().UTC(), incomes, expenses, savings); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!", zap.Int64("user_id", userID))
}

func ensureDemoUser(ctx context.Context, authService *service.AuthService) (int64, bool, error) {
	email := envOr("SEED_EMAIL", defaultSeedEmail)
	password := envOr("SEED_PASSWORD", defaultSeedPassword)

	resp, err := authService.Register(ctx, &dto.RegisterRequest{
		Email:     email,
		FirstName: "Demo",
		LastName:  "User",
		Password:  password,
	})
	if err == nil {
		return resp.User.ID, true, nil
	}
	if !errors.Is(err, service.ErrUserExists) {
		return 0, false, err
	}

	resp, err = authService.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return 0, false, err
	}
	return resp.User.ID, false, nil
}

// seedTransactions spreads sample records over the current and previous month so the
// default dashboard summary has data in both.
func seedTransactions(
	ctx context.Context,
	userID int64,
	now time.Time,
	incomes *service.IncomeService,
	expenses *service.ExpenseService,
	savings *service.SavingsService,
) error {
	monthly := models.RecurrenceMonthly
	for _, month := range []models.Window{models.PreviousMonthWindow(now), models.MonthWindow(now)} {
		day := func(d int) time.Time { return month.Start.AddDate(0, 0, d-1) }

		if _, err := incomes.Create(ctx, userID, &models.Income{
			Entry:             entry("3200.00", "Monthly salary", day(1)),
			Category:          models.IncomeSalary,
			IsRecurring:       true,
			RecurrencePattern: &monthly,
		}); err != nil {
			return err
		}
		if _, err := incomes.Create(ctx, userID, &models.Income{
			Entry:    entry("450.00", "Freelance design work", day(12)),
			Category: models.IncomeFreelance,
		}); err != nil {
			return err
		}

		for _, e := range []*models.Expense{
			{Entry: entry("1100.00", "Apartment rent", day(2)), Category: models.ExpenseHousing, Type: models.ExpenseFixed, IsRecurring: true, RecurrencePattern: &monthly},
			{Entry: entry("86.40", "Electricity and water", day(5)), Category: models.ExpenseUtilities, Type: models.ExpenseFixed},
			{Entry: entry("312.75", "Groceries", day(9)), Category: models.ExpenseFood},
			{Entry: entry("54.00", "Cinema and dinner", day(14)), Category: models.ExpenseEntertainment},
		} {
			if _, err := expenses.Create(ctx, userID, e); err != nil {
				return err
			}
		}

		goal := decimal.RequireFromString("5000.00")
		target := month.Start.AddDate(1, 0, 0)
		if _, err := savings.Create(ctx, userID, &models.Savings{
			Entry:      entry("400.00", "Emergency fund deposit", day(3)),
			Category:   models.SavingsEmergencyFund,
			GoalAmount: &goal,
			TargetDate: &target,
		}); err != nil {
			return err
		}
	}
	return nil
}

func entry(amount, description string, date time.Time) models.Entry {
	return models.Entry{
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Date:        date,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
