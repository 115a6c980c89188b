package repository

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// HistoryRepository は練習履歴の永続化ポート(DIP)。
type HistoryRepository interface {
	Create(entry *entity.HistoryEntry) error
	CreateBatch(entries []entity.HistoryEntry) error
	// ListByUser は追記順(played_at 昇順)で返す。
	ListByUser(userID string) ([]entity.HistoryEntry, error)
	// TrimByUser は新しい方から keep 件だけ残し、それより古い履歴を削除する。
	TrimByUser(userID string, keep int) error
}
