package repository

import (
	"context"
	"sync"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// MemoryStateRepository guarda el estado en un mapa en memoria. Se usa como
// overlay de contingencia cuando el backend durable falla y en tests.
type MemoryStateRepository struct {
	mu        sync.Mutex
	progress  map[string]domain.Progress
	completed map[string]domain.AnswerMap
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		progress:  make(map[string]domain.Progress),
		completed: make(map[string]domain.AnswerMap),
	}
}

func (r *MemoryStateRepository) LoadProgress(_ context.Context, sessionID string) (domain.Progress, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.progress[sessionID]
	if !ok {
		return domain.Progress{}, false, nil
	}
	return p.Clone(), true, nil
}

func (r *MemoryStateRepository) SaveProgress(_ context.Context, sessionID string, progress domain.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[sessionID] = progress.Clone()
	return nil
}

func (r *MemoryStateRepository) LoadCompleted(_ context.Context, sessionID string) (domain.AnswerMap, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	answers, ok := r.completed[sessionID]
	if !ok {
		return nil, false, nil
	}
	return answers.Clone(), true, nil
}

func (r *MemoryStateRepository) SaveCompleted(_ context.Context, sessionID string, answers domain.AnswerMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[sessionID] = answers.Clone()
	return nil
}

func (r *MemoryStateRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.progress, sessionID)
	delete(r.completed, sessionID)
	return nil
}
