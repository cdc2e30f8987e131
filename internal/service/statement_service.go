package service

import (
	"context"
	"errors"
	"mime"
	"strings"
	"sync"

	"expense-manager/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const pdfMediaType = "application/pdf"

var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrInvalidDocument      = errors.New("invalid document")
	ErrUnreadableDocument   = errors.New("unreadable document")
	ErrExtractionInProgress = errors.New("extraction already in progress")
)

var userMessages = []struct {
	err error
	msg string
}{
	{ErrUnsupportedFileType, "Please upload a PDF file"},
	{ErrInvalidDocument, "Please upload a valid PDF file"},
	{ErrUnreadableDocument, "Failed to process PDF. Please try again."},
	{ErrExtractionInProgress, "A statement is already being processed"},
}

// UserMessage returns the text shown to the user for a statement error.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Failed to extract statement"
}

// StatementService runs text extraction for uploaded statements. Only one
// extraction may be in flight; the outcome of the last one is kept as the
// current status.
type StatementService struct {
	extractor TextExtractor
	maxBytes  int64
	clock     Clock
	logger    *zap.Logger

	sem    *semaphore.Weighted
	mu     sync.RWMutex
	status models.ExtractionStatus
}

func NewStatementService(extractor TextExtractor, maxBytes int64, clock Clock, logger *zap.Logger) *StatementService {
	return &StatementService{
		extractor: extractor,
		maxBytes:  maxBytes,
		clock:     clock,
		logger:    logger,
		sem:       semaphore.NewWeighted(1),
		status: models.ExtractionStatus{
			State:     models.ExtractionStateIdle,
			UpdatedAt: clock.Now(),
		},
	}
}

// Extract validates the upload and returns the text of the document.
// Rejected uploads never reach the extractor and leave the status untouched.
func (s *StatementService) Extract(ctx context.Context, upload models.StatementUpload) (string, error) {
	if !isPDF(upload.ContentType) {
		s.logger.Info("Rejected statement upload",
			zap.String("file", upload.FileName),
			zap.String("content_type", upload.ContentType),
		)
		return "", ErrUnsupportedFileType
	}
	if len(upload.Data) == 0 || (s.maxBytes > 0 && int64(len(upload.Data)) > s.maxBytes) {
		return "", ErrInvalidDocument
	}

	if !s.sem.TryAcquire(1) {
		return "", ErrExtractionInProgress
	}
	defer s.sem.Release(1)

	s.setStatus(models.ExtractionStatus{
		State:    models.ExtractionStateExtracting,
		FileName: upload.FileName,
	})

	text, err := s.extractor.ExtractText(ctx, upload.Data)
	if err != nil {
		s.logger.Error("Failed to extract statement text",
			zap.String("file", upload.FileName),
			zap.Int("size", len(upload.Data)),
			zap.Error(err),
		)
		s.setStatus(models.ExtractionStatus{
			State:    models.ExtractionStateFailed,
			FileName: upload.FileName,
			Error:    UserMessage(ErrUnreadableDocument),
		})
		return "", ErrUnreadableDocument
	}

	s.setStatus(models.ExtractionStatus{
		State:      models.ExtractionStateSucceeded,
		FileName:   upload.FileName,
		TextLength: len(text),
	})

	s.logger.Info("Statement extracted",
		zap.String("file", upload.FileName),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func (s *StatementService) Status() models.ExtractionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *StatementService) setStatus(status models.ExtractionStatus) {
	status.UpdatedAt = s.clock.Now()
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func isPDF(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == pdfMediaType
}
