package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mightymouse007/genie-it-pathfinder/internal/domain"
)

// PgStateRepository guarda los registros del quiz en Postgres como un
// key-value durable: una fila por clave en quiz_records con payload JSONB.
type PgStateRepository struct {
	pool      *pgxpool.Pool
	appPrefix string
}

func NewPgStateRepository(pool *pgxpool.Pool, appPrefix string) *PgStateRepository {
	return &PgStateRepository{pool: pool, appPrefix: appPrefix}
}

func (r *PgStateRepository) LoadProgress(ctx context.Context, sessionID string) (domain.Progress, bool, error) {
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

func (r *PgStateRepository) SaveProgress(ctx context.Context, sessionID string, progress domain.Progress) error {
	payload, err := json.Marshal(toRecord(progress))
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}
	return r.set(ctx, progressKey(r.appPrefix, sessionID), payload)
}

func (r *PgStateRepository) LoadCompleted(ctx context.Context, sessionID string) (domain.AnswerMap, bool, error) {
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

func (r *PgStateRepository) SaveCompleted(ctx context.Context, sessionID string, answers domain.AnswerMap) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers record: %w", err)
	}
	return r.set(ctx, answersKey(r.appPrefix, sessionID), payload)
}

func (r *PgStateRepository) Clear(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM quiz_records WHERE record_key = ANY($1)`
	keys := []string{
		progressKey(r.appPrefix, sessionID),
		answersKey(r.appPrefix, sessionID),
	}
	_, err := r.pool.Exec(ctx, query, keys)
	return err
}

func (r *PgStateRepository) get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT payload FROM quiz_records WHERE record_key = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (r *PgStateRepository) set(ctx context.Context, key string, payload []byte) error {
	const query = `
		INSERT INTO quiz_records (record_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (record_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`
	_, err := r.pool.Exec(ctx, query, key, payload)
	return err
}
