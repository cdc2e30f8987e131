package service

import (
	"context"
	"sync"

	"expense-manager/internal/analytics"
	"expense-manager/internal/models"
	"expense-manager/internal/repository"

	"go.uber.org/zap"
)

// AnalyticsService serves reports over the current ledger. The last report is
// reused until the ledger version changes; callers always get their own copy.
type AnalyticsService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger

	mu          sync.Mutex
	cached      analytics.Report
	cachedAt    uint64
	cacheFilled bool
}

func NewAnalyticsService(txRepo *repository.TransactionRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *AnalyticsService) Report(ctx context.Context) (analytics.Report, error) {
	if err := ctx.Err(); err != nil {
		return analytics.Report{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cacheFilled && s.cachedAt == s.txRepo.Version() {
		return s.cached.Clone(), nil
	}

	txs, version := s.txRepo.Snapshot()
	report := analytics.BuildReport(txs)
	s.cached = report
	s.cachedAt = version
	s.cacheFilled = true

	s.logger.Debug("Analytics report rebuilt",
		zap.Uint64("version", version),
		zap.Int("transactions", report.Count),
	)

	return report.Clone(), nil
}

func (s *AnalyticsService) Totals(ctx context.Context) (analytics.Totals, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return analytics.Totals{}, err
	}
	return report.Totals, nil
}

// TransactionsByType lists the ledger entries of one type, newest first.
func (s *AnalyticsService) TransactionsByType(ctx context.Context, t models.TransactionType) ([]models.Transaction, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ByType(txs, t), nil
}
