package api

import (
	"errors"

	"mybalance/docs"
	"mybalance/internal/api/handlers"
	"mybalance/pkg/config"
	"mybalance/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Income    *handlers.IncomeHandler
	Expense   *handlers.ExpenseHandler
	Savings   *handlers.SavingsHandler
	Health    *handlers.HealthHandler
}

func SetupRouter(
	h Handlers,
	tokens middleware.TokenValidator,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "mybalance",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	// Let the UI target whichever host served the page.
	docs.SwaggerInfo.Host = ""
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", h.Health.Health)

	api := app.Group("/api")

	// Public auth routes are rate limited per client IP.
	authLimiter := limiter.New(limiter.Config{
		Max:        cfg.RateLimit.AuthMax,
		Expiration: cfg.RateLimit.AuthWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, try again later",
			})
		},
	})
	requireAuth := middleware.AuthMiddleware(tokens, appLogger)

	auth := api.Group("/auth")
	auth.Post("/register", authLimiter, h.Auth.Register)
	auth.Post("/login", authLimiter, h.Auth.Login)
	auth.Post("/validate-token", h.Auth.ValidateToken)
	auth.Get("/me", requireAuth, h.Auth.Me)

	dashboard := api.Group("/dashboard", requireAuth)
	dashboard.Get("/summary", h.Dashboard.Summary)
	dashboard.Get("/summary/date-range", h.Dashboard.SummaryByDateRange)

	h.Income.Register(api.Group("/income", requireAuth))
	h.Expense.Register(api.Group("/expenses", requireAuth))
	h.Savings.Register(api.Group("/savings", requireAuth))

	return app
}
