package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms-dojo/picking-trainer-api/internal/application/dto"
	"github.com/wms-dojo/picking-trainer-api/internal/domain"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/repository"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

// HistoryUseCase は練習履歴の記録・一覧・自己ベスト算出とレガシー取り込み。
// 履歴はユーザーごとに trainer.HistoryLimit 件まで保持し、超過分は古い方から捨てる。
type HistoryUseCase struct {
	repo repository.HistoryRepository
}

// NewHistoryUseCase はユースケースを構築する。
func NewHistoryUseCase(repo repository.HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// Record は練習結果を 1 件記録し、上限を超えた古い履歴を削除する。
func (uc *HistoryUseCase) Record(userID string, in dto.RecordHistoryRequest) (*dto.HistoryEntryResponse, error) {
	mode := in.Mode
	if mode == "" {
		mode = entity.ModeNormal
	}
	if mode != entity.ModeNormal && mode != entity.ModeTimeAttack {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.HistoryEntry{
		ID:            uuid.New().String(),
		UserID:        userID,
		Mode:          mode,
		Score:         in.Score,
		TotalAnswered: in.TotalAnswered,
		TimeLimit:     in.TimeLimit,
		PlayedAt:      time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	if err := uc.repo.TrimByUser(userID, trainer.HistoryLimit); err != nil {
		return nil, err
	}
	return toHistoryResponse(entry), nil
}

// List はユーザーの履歴を追記順で返す。
func (uc *HistoryUseCase) List(userID string) (*dto.HistoryListResponse, error) {
	history, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(history))
	for i := range history {
		items = append(items, *toHistoryResponse(&history[i]))
	}
	return &dto.HistoryListResponse{Items: items}, nil
}

// Best はユーザーの自己ベストを返す。記録が無ければ Best は nil。
// timeAttack で timeLimit 指定時は同一制限時間の最大回答数、それ以外は最大スコア。
func (uc *HistoryUseCase) Best(userID, mode string, timeLimit *int) (*dto.BestScoreResponse, error) {
	history, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	best := trainer.BestScore(history, userID, mode, trainer.BestScoreOption{TimeLimit: timeLimit})
	return &dto.BestScoreResponse{Best: best}, nil
}

// ImportLegacy はブラウザ版エクスポートの履歴を取り込む。
// mode の無いレガシーエントリは trainer.MigrateHistory で normal に補完し、
// trainer.TrimHistory で上限件数へ切り詰めてから一括保存する。
func (uc *HistoryUseCase) ImportLegacy(userID string, in dto.ImportHistoryRequest) (*dto.ImportResponse, error) {
	entries := make([]entity.HistoryEntry, 0, len(in.History))
	for _, item := range in.History {
		entries = append(entries, entity.HistoryEntry{
			UserID:        userID,
			Mode:          item.Mode,
			Score:         item.Score,
			TotalAnswered: item.TotalAnswered,
			TimeLimit:     item.TimeLimit,
			PlayedAt:      item.PlayedAt,
		})
	}
	migrated := trainer.TrimHistory(trainer.MigrateHistory(entries))
	for i := range migrated {
		migrated[i].ID = uuid.New().String()
	}
	if err := uc.repo.CreateBatch(migrated); err != nil {
		return nil, err
	}
	// 既存の履歴と合わせて上限を超えた分を落とす
	if err := uc.repo.TrimByUser(userID, trainer.HistoryLimit); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Imported: len(migrated)}, nil
}

func toHistoryResponse(h *entity.HistoryEntry) *dto.HistoryEntryResponse {
	return &dto.HistoryEntryResponse{
		ID:            h.ID,
		Mode:          h.Mode,
		Score:         h.Score,
		TotalAnswered: h.TotalAnswered,
		TimeLimit:     h.TimeLimit,
		PlayedAt:      h.PlayedAt,
		PlayedAtText:  trainer.FormatDateTime(h.PlayedAt),
	}
}
