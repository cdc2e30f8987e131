package app

import (
	"expense-manager/internal/api"
	"expense-manager/internal/api/handlers"
	"expense-manager/internal/repository"
	"expense-manager/internal/service"
	"expense-manager/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

// Injector is a function that will inject desired services
// to a target function
type Injector func(function interface{}) error

// BootstrapServices sets up the di container with all app services.
// Every service is a singleton, so the ledger is shared by all handlers.
func BootstrapServices(cfg *config.Config, logger *zap.Logger) (Injector, error) {
	c := dig.New()

	providers := []interface{}{
		func() *config.Config { return cfg },
		func() *zap.Logger { return logger },
		func(cfg *config.Config) service.Clock {
			return service.NewSystemClock(cfg.Ledger.Location)
		},
		repository.NewTransactionRepository,
		service.NewLedgerService,
		service.NewAnalyticsService,
		func(logger *zap.Logger) service.TextExtractor {
			return service.NewPDFExtractor(logger)
		},
		func(cfg *config.Config, extractor service.TextExtractor, clock service.Clock, logger *zap.Logger) *service.StatementService {
			return service.NewStatementService(extractor, cfg.Statement.MaxUploadBytes, clock, logger)
		},
		handlers.NewTransactionHandler,
		handlers.NewAnalysisHandler,
		handlers.NewStatementHandler,
		func(
			cfg *config.Config,
			txHandler *handlers.TransactionHandler,
			analysisHandler *handlers.AnalysisHandler,
			statementHandler *handlers.StatementHandler,
			logger *zap.Logger,
		) *fiber.App {
			return api.SetupRouter(cfg, txHandler, analysisHandler, statementHandler, logger)
		},
	}

	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}

	return func(function interface{}) error {
		return c.Invoke(function)
	}, nil
}
