package repository

import (
	"context"
	"sync"

	"expense-manager/internal/models"

	"go.uber.org/zap"
)

// TransactionRepository is the session ledger. Transactions are kept newest
// first and are never updated or removed.
type TransactionRepository struct {
	mu      sync.RWMutex
	items   []models.Transaction
	version uint64
	logger  *zap.Logger
}

func NewTransactionRepository(logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		items:  []models.Transaction{},
		logger: logger,
	}
}

// Create prepends tx to the ledger.
func (r *TransactionRepository) Create(ctx context.Context, tx models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Transaction, 0, len(r.items)+1)
	items = append(items, tx)
	items = append(items, r.items...)
	r.items = items
	r.version++

	r.logger.Debug("Transaction stored",
		zap.String("id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
		zap.Int("count", len(r.items)),
	)

	return nil
}

// List returns a copy of the ledger, newest first.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Snapshot returns the ledger copy together with the version it was taken at.
func (r *TransactionRepository) Snapshot() ([]models.Transaction, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.items))
	copy(out, r.items)
	return out, r.version
}

// Version is incremented on every successful Create.
func (r *TransactionRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *TransactionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
