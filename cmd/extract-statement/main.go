package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"expense-manager/internal/service"
	"expense-manager/pkg/config"
	"expense-manager/pkg/logger"

	"go.uber.org/zap"
)

// extract-statement prints the text of one or more statement PDFs, in the
// same form the API returns it.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <statement.pdf>...\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level, "console"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	extractor := service.NewPDFExtractor(appLogger)

	failed := 0
	for _, path := range os.Args[1:] {
		text, err := extractFile(ctx, extractor, path, cfg.Statement.MaxUploadBytes)
		if err != nil {
			appLogger.Error("Failed to extract statement", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}

		if len(os.Args) > 2 {
			fmt.Printf("==> %s <==\n", path)
		}
		fmt.Print(text)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func extractFile(ctx context.Context, extractor *service.PDFExtractor, path string, maxBytes int64) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", service.ErrUnsupportedFileType
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() == 0 || info.Size() > maxBytes {
		return "", service.ErrInvalidDocument
	}

	text, err := extractor.ExtractFile(ctx, path)
	if err != nil {
		return "", errors.Join(service.ErrUnreadableDocument, err)
	}
	return text, nil
}
