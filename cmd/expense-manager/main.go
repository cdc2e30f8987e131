package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"expense-manager/internal/app"
	"expense-manager/pkg/config"
	"expense-manager/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Expense Manager API
// @version 1.0
// @description Session ledger of income, expenses and savings with spending analysis and bank statement text extraction

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting expense manager",
		zap.String("timezone", cfg.Ledger.TimeZone),
		zap.Int64("max_upload_bytes", cfg.Statement.MaxUploadBytes),
	)

	inject, err := app.BootstrapServices(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to wire services", zap.Error(err))
	}

	err = inject(func(server *fiber.App) {
		// Start server
		go func() {
			addr := ":" + cfg.Server.Port
			appLogger.Info("Server starting", zap.String("address", addr))
			if err := server.Listen(addr); err != nil {
				appLogger.Fatal("Server failed", zap.Error(err))
			}
		}()

		// Wait for interrupt signal
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		appLogger.Info("Shutting down server")
		if err := server.Shutdown(); err != nil {
			appLogger.Error("Server shutdown error", zap.Error(err))
		}
	})
	if err != nil {
		appLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
