package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// RedisStateRepository guarda los registros del quiz directamente como
// strings JSON en Redis. Es el backend que más se parece al layout de
// almacenamiento original (clave-valor plano).
type RedisStateRepository struct {
	client    *redis.Client
	appPrefix string
	ttl       time.Duration
}

// NewRedisStateRepository crea el repositorio. ttl <= 0 persiste sin expiración.
func NewRedisStateRepository(client *redis.Client, appPrefix string, ttl time.Duration) *RedisStateRepository {
	return &RedisStateRepository{client: client, appPrefix: appPrefix, ttl: ttl}
}

func (r *RedisStateRepository) LoadProgress(ctx context.Context, sessionID string) (domain.Progress, bool, error) {
	payload, found, err := r.get(ctx, progressKey(r.appPrefix, sessionID))
	if err != nil || !found {
		return domain.Progress{}, false, err
	}

	var rec progressRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return domain.Progress{}, false, fmt.Errorf("unmarshal progress record: %w", err)
	}
	return fromRecord(rec), true, nil
}

func (r *RedisStateRepository) SaveProgress(ctx context.Context, sessionID string, progress domain.Progress) error {
	payload, err := json.Marshal(toRecord(progress))
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}
	return r.client.Set(ctx, progressKey(r.appPrefix, sessionID), payload, r.expiration()).Err()
}

func (r *RedisStateRepository) LoadCompleted(ctx context.Context, sessionID string) (domain.AnswerMap, bool, error) {
	payload, found, err := r.get(ctx, answersKey(r.appPrefix, sessionID))
	if err != nil || !found {
		return nil, false, err
	}

	var answers domain.AnswerMap
	if err := json.Unmarshal(payload, &answers); err != nil {
		return nil, false, fmt.Errorf("unmarshal answers record: %w", err)
	}
	return answers, true, nil
}

func (r *RedisStateRepository) SaveCompleted(ctx context.Context, sessionID string, answers domain.AnswerMap) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers record: %w", err)
	}
	return r.client.Set(ctx, answersKey(r.appPrefix, sessionID), payload, r.expiration()).Err()
}

func (r *RedisStateRepository) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx,
		progressKey(r.appPrefix, sessionID),
		answersKey(r.appPrefix, sessionID),
	).Err()
}

func (r *RedisStateRepository) get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (r *RedisStateRepository) expiration() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	return r.ttl
}
