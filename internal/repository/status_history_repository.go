package repository

import (
	"context"
	"sync"

	"github.com/a1technologies/cooling-crm/internal/domain"
)

// StatusHistoryRepository stores service request audit entries.
type StatusHistoryRepository interface {
	Create(ctx context.Context, change domain.StatusChange) error
	ListByRequest(ctx context.Context, requestID string) ([]domain.StatusChange, error)
}

type statusHistoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.StatusChange
}

// NewStatusHistoryRepository builds an empty in-memory audit log.
func NewStatusHistoryRepository() StatusHistoryRepository {
	return &statusHistoryRepository{entries: make(map[string][]domain.StatusChange)}
}

func (r *statusHistoryRepository) Create(_ context.Context, change domain.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[change.RequestID] = append(r.entries[change.RequestID], change)
	return nil
}

func (r *statusHistoryRepository) ListByRequest(_ context.Context, requestID string) ([]domain.StatusChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.StatusChange(nil), r.entries[requestID]...), nil
}
