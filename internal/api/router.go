package api

import (
	"expense-manager/docs"
	"expense-manager/internal/api/handlers"
	"expense-manager/pkg/config"
	"expense-manager/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.Config,
	txHandler *handlers.TransactionHandler,
	analysisHandler *handlers.AnalysisHandler,
	statementHandler *handlers.StatementHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "expense-manager",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo // registers the spec with swag
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	transactions := api.Group("/transactions")
	transactions.Post("", txHandler.CreateTransaction)
	transactions.Get("", txHandler.ListTransactions)
	transactions.Get("/income", txHandler.ListIncome)
	transactions.Get("/expense", txHandler.ListExpenses)

	api.Get("/categories", txHandler.ListCategories)
	api.Get("/summary", analysisHandler.GetSummary)
	api.Get("/analysis", analysisHandler.GetAnalysis)

	statements := api.Group("/statements")
	statements.Post("/extract", statementHandler.ExtractStatement)
	statements.Get("/status", statementHandler.GetStatus)

	return app
}
