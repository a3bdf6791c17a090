package inmem

import (
	"context"
	"sync"
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session/repository"
)

// Repository is a mutex-guarded in-memory TokenRepository.
type Repository struct {
	mu      sync.RWMutex
	records map[string]model.CalendarIntegration
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{records: make(map[string]model.CalendarIntegration)}
}

func (r *Repository) Get(ctx context.Context, userID string) (model.CalendarIntegration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[userID]
	if !ok {
		return model.CalendarIntegration{}, repository.ErrIntegrationNotFound
	}
	return record, nil
}

func (r *Repository) Save(ctx context.Context, record model.CalendarIntegration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.UpdatedAt = time.Now()
	r.records[record.UserID] = record
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, userID string, status model.IntegrationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return repository.ErrIntegrationNotFound
	}
	record.Status = status
	record.UpdatedAt = time.Now()
	r.records[userID] = record
	return nil
}
