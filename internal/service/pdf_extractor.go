package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

var errEmptyDocument = errors.New("document is empty")

// TextExtractor turns a document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// PDFExtractor extracts text from PDF documents using go-fitz (MuPDF).
type PDFExtractor struct {
	logger *zap.Logger
}

func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// ExtractText reads every page in order. Each page's text is collapsed to a
// single line and followed by a blank line. A failure on any page fails the
// whole document.
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errEmptyDocument
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		pageText, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i+1, err)
		}
		pages = append(pages, pageText)
	}

	text := joinPages(pages)

	e.logger.Info("PDF text extracted using go-fitz",
		zap.Int("pages", len(pages)),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

// ExtractFile is ExtractText for a document on disk.
func (e *PDFExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return e.ExtractText(ctx, data)
}

func joinPages(pages []string) string {
	var b strings.Builder
	for _, page := range pages {
		b.WriteString(normalizeWhitespace(sanitizeUTF8(page)))
		b.WriteString("\n\n")
	}
	return b.String()
}
