package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// FallbackStateRepository envuelve un backend durable con un overlay en
// memoria. Si el backend falla, la sesión sigue viva sin persistir: las
// escrituras quedan en el overlay y las lecturas lo consultan cuando el
// backend no responde o no tiene el registro. Los errores del backend se
// loguean en Warn y nunca suben al caller.
type FallbackStateRepository struct {
	primary StateRepository
	overlay *MemoryStateRepository
	logger  *zap.Logger
}

func NewFallbackStateRepository(primary StateRepository, logger *zap.Logger) *FallbackStateRepository {
	return &FallbackStateRepository{
		primary: primary,
		overlay: NewMemoryStateRepository(),
		logger:  logger,
	}
}

func (r *FallbackStateRepository) LoadProgress(ctx context.Context, sessionID string) (domain.Progress, bool, error) {
	p, found, err := r.primary.LoadProgress(ctx, sessionID)
	if err == nil && found {
		return p, true, nil
	}
	if err != nil {
		r.logger.Warn("load progress from primary store failed, using in-memory state", zap.Error(err), zap.String("session_id", sessionID))
	}
	return r.overlay.LoadProgress(ctx, sessionID)
}

func (r *FallbackStateRepository) SaveProgress(ctx context.Context, sessionID string, progress domain.Progress) error {
	// El overlay se escribe siempre para que una falla del backend no pierda
	// la transición recién aplicada.
	_ = r.overlay.SaveProgress(ctx, sessionID, progress)
	if err := r.primary.SaveProgress(ctx, sessionID, progress); err != nil {
		r.logger.Warn("save progress to primary store failed, session continues unpersisted", zap.Error(err), zap.String("session_id", sessionID))
	}
	return nil
}

func (r *FallbackStateRepository) LoadCompleted(ctx context.Context, sessionID string) (domain.AnswerMap, bool, error) {
	answers, found, err := r.primary.LoadCompleted(ctx, sessionID)
	if err == nil && found {
		return answers, true, nil
	}
	if err != nil {
		r.logger.Warn("load completed answers from primary store failed, using in-memory state", zap.Error(err), zap.String("session_id", sessionID))
	}
	return r.overlay.LoadCompleted(ctx, sessionID)
}

func (r *FallbackStateRepository) SaveCompleted(ctx context.Context, sessionID string, answers domain.AnswerMap) error {
	_ = r.overlay.SaveCompleted(ctx, sessionID, answers)
	if err := r.primary.SaveCompleted(ctx, sessionID, answers); err != nil {
		r.logger.Warn("save completed answers to primary store failed, session continues unpersisted", zap.Error(err), zap.String("session_id", sessionID))
	}
	return nil
}

func (r *FallbackStateRepository) Clear(ctx context.Context, sessionID string) error {
	_ = r.overlay.Clear(ctx, sessionID)
	if err := r.primary.Clear(ctx, sessionID); err != nil {
		r.logger.Warn("clear primary store failed", zap.Error(err), zap.String("session_id", sessionID))
	}
	return nil
}
