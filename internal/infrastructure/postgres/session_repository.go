package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo は SessionRepository の PostgreSQL 実装。
// 伝票(Slips)は JSON のまま jsonb カラムに保存する。UI が同じ形をそのまま扱うため
// 正規化はしない。
type SessionRepo struct {
	q Querier
}

// NewSessionRepository は練習セッションの永続化アダプタを構築する。
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create は新しいセッションを保存する。
func (r *SessionRepo) Create(session *entity.TrainingSession) error {
	slips, err := json.Marshal(session.Slips)
	if err != nil {
		return fmt.Errorf("marshal slips: %w", err)
	}
	query := `
		INSERT INTO training_sessions (id, user_id, mode, time_limit, slips, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.UserID, session.Mode, session.TimeLimit, slips,
		session.StartedAt, session.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID はセッションを取得する。無ければ (nil, nil)。
func (r *SessionRepo) GetByID(id string) (*entity.TrainingSession, error) {
	query := `
		SELECT id, user_id, mode, time_limit, slips, started_at, finished_at
		FROM training_sessions WHERE id = $1`
	var s entity.TrainingSession
	var slips []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Mode, &s.TimeLimit, &slips, &s.StartedAt, &s.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := json.Unmarshal(slips, &s.Slips); err != nil {
		return nil, fmt.Errorf("unmarshal slips: %w", err)
	}
	return &s, nil
}

// Update は回答結果などセッションの状態を更新する。
func (r *SessionRepo) Update(session *entity.TrainingSession) error {
	slips, err := json.Marshal(session.Slips)
	if err != nil {
		return fmt.Errorf("marshal slips: %w", err)
	}
	query := `
		UPDATE training_sessions SET slips = $2, finished_at = $3
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, session.ID, slips, session.FinishedAt)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}
