package postgres

import (
	"context"
	"fmt"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo は HistoryRepository の PostgreSQL 実装。
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository は練習履歴の永続化アダプタを構築する。
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Create は履歴を 1 件追記する。
func (r *HistoryRepo) Create(entry *entity.HistoryEntry) error {
	query := `
		INSERT INTO training_history (id, user_id, mode, score, total_answered, time_limit, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.Mode, entry.Score, entry.TotalAnswered,
		entry.TimeLimit, entry.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// CreateBatch はレガシーインポート用に複数件を追記する。
func (r *HistoryRepo) CreateBatch(entries []entity.HistoryEntry) error {
	for i := range entries {
		if err := r.Create(&entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListByUser は指定ユーザーの履歴を追記順(played_at 昇順)で返す。
func (r *HistoryRepo) ListByUser(userID string) ([]entity.HistoryEntry, error) {
	query := `
		SELECT id, user_id, mode, score, total_answered, time_limit, played_at
		FROM training_history WHERE user_id = $1 ORDER BY played_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []entity.HistoryEntry
	for rows.Next() {
		var h entity.HistoryEntry
		if err := rows.Scan(&h.ID, &h.UserID, &h.Mode, &h.Score, &h.TotalAnswered,
			&h.TimeLimit, &h.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// TrimByUser は新しい方から keep 件だけ残し、それより古い履歴を削除する。
// アプリ層の TrimHistory と同じ上限をデータベース側でも保証する。
func (r *HistoryRepo) TrimByUser(userID string, keep int) error {
	query := `
		DELETE FROM training_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM training_history
			WHERE user_id = $1
			ORDER BY played_at DESC, id DESC
			LIMIT $2
		)`
	_, err := r.q.Exec(context.Background(), query, userID, keep)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}
