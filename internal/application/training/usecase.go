// Package training は練習セッション(出題〜採点)のユースケース。
package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wms-dojo/picking-trainer-api/internal/application/dto"
	"github.com/wms-dojo/picking-trainer-api/internal/domain"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/repository"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

// Defaults はリクエストで未指定のときに使う出題のデフォルト値。
type Defaults struct {
	QuestionCount int
	SlipCount     int
	ItemsPerSlip  int
	TimeLimitSec  int
}

// SessionUseCase は出題・伝票セッションの開始、採点、履歴記録をまとめる。
// 乱数は trainer.Generator に閉じ込めてあり、テストではシード固定で注入する。
type SessionUseCase struct {
	gen      *trainer.Generator
	products repository.ProductRepository
	sessions repository.SessionRepository
	history  repository.HistoryRepository
	defaults Defaults
}

// NewSessionUseCase はユースケースを構築する。
func NewSessionUseCase(
	gen *trainer.Generator,
	products repository.ProductRepository,
	sessions repository.SessionRepository,
	history repository.HistoryRepository,
	defaults Defaults,
) *SessionUseCase {
	return &SessionUseCase{
		gen:      gen,
		products: products,
		sessions: sessions,
		history:  history,
		defaults: defaults,
	}
}

// StartPractice は通常練習またはタイムアタックの出題を生成する。
// 在庫台帳は使わない簡易版のため、同じ商品が続けて出題されることがある。
// カタログが空(または全商品在庫 0)のときはタスク 0 件で返す。
func (uc *SessionUseCase) StartPractice(userID string, in dto.StartPracticeRequest) (*dto.PracticeResponse, error) {
	mode := in.Mode
	if mode == "" {
		mode = entity.ModeNormal
	}
	if mode != entity.ModeNormal && mode != entity.ModeTimeAttack {
		return nil, domain.ErrInvalidInput
	}
	count := in.Count
	if count <= 0 {
		count = uc.defaults.QuestionCount
	}
	timeLimit := in.TimeLimit
	if mode == entity.ModeTimeAttack && timeLimit == nil {
		limit := uc.defaults.TimeLimitSec
		timeLimit = &limit
	}

	products, err := uc.listProducts()
	if err != nil {
		return nil, err
	}
	tasks := uc.gen.RandomTasks(products, count)
	return &dto.PracticeResponse{Mode: mode, Tasks: tasks, TimeLimit: timeLimit}, nil
}

// StartSlips は伝票モードのセッションを開始する。生成した伝票は jsonb で永続化し、
// 結果送信まで進行中のまま保持する。
func (uc *SessionUseCase) StartSlips(userID string, in dto.StartSlipsRequest) (*dto.SessionResponse, error) {
	slipCount := in.SlipCount
	if slipCount <= 0 {
		slipCount = uc.defaults.SlipCount
	}
	itemsPerSlip := in.ItemsPerSlip
	if itemsPerSlip <= 0 {
		itemsPerSlip = uc.defaults.ItemsPerSlip
	}

	products, err := uc.listProducts()
	if err != nil {
		return nil, err
	}
	slips := uc.gen.Slips(products, slipCount, itemsPerSlip)

	session := &entity.TrainingSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mode:      entity.ModeSlip,
		Slips:     slips,
		StartedAt: time.Now(),
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// GetSession はセッションを取得する。他ユーザーのセッションは domain.ErrForbidden。
func (uc *SessionUseCase) GetSession(sessionID, userID string) (*dto.SessionResponse, error) {
	session, err := uc.loadOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// SubmitSlips は回答済み伝票を受け取り、採点してセッションを確定し、履歴へ記録する。
// スコアは found=true の正答数、回答総数は全タスク数。
func (uc *SessionUseCase) SubmitSlips(sessionID, userID string, in dto.SubmitSlipsRequest) (*dto.SubmitSlipsResponse, error) {
	session, err := uc.loadOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.FinishedAt != nil {
		return nil, domain.ErrSessionFinished
	}

	summary := trainer.SummarizeSlips(in.Slips)
	allCompleted := trainer.AllSlipsCompleted(in.Slips)

	now := time.Now()
	session.Slips = in.Slips
	session.FinishedAt = &now
	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}

	entry := &entity.HistoryEntry{
		ID:            uuid.New().String(),
		UserID:        userID,
		Mode:          entity.ModeSlip,
		Score:         summary.CorrectCount,
		TotalAnswered: summary.TotalTasks,
		PlayedAt:      now,
	}
	if err := uc.history.Create(entry); err != nil {
		return nil, err
	}
	if err := uc.history.TrimByUser(userID, trainer.HistoryLimit); err != nil {
		return nil, err
	}

	return &dto.SubmitSlipsResponse{
		AllCompleted:   allCompleted,
		TotalTasks:     summary.TotalTasks,
		CompletedTasks: summary.CompletedTasks,
		CorrectCount:   summary.CorrectCount,
		DurationText:   trainer.FormatDuration(in.ElapsedMs),
		HistoryID:      entry.ID,
	}, nil
}

// PrintSlip は指定伝票の印刷用 HTML 断片を返す。商品名などの利用者入力は
// trainer.EscapeHTML でエスケープして埋め込む。伝票が見つからなければ domain.ErrNotFound。
func (uc *SessionUseCase) PrintSlip(sessionID, userID, slipID string) (string, error) {
	session, err := uc.loadOwned(sessionID, userID)
	if err != nil {
		return "", err
	}
	for _, slip := range session.Slips {
		if slip.SlipID == slipID {
			return renderSlipHTML(slip), nil
		}
	}
	return "", domain.ErrNotFound
}

func (uc *SessionUseCase) loadOwned(sessionID, userID string) (*entity.TrainingSession, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return session, nil
}

func (uc *SessionUseCase) listProducts() ([]entity.Product, error) {
	list, err := uc.products.ListAll()
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	return products, nil
}

func renderSlipHTML(slip entity.Slip) string {
	var b strings.Builder
	b.WriteString(`<div class="slip">`)
	fmt.Fprintf(&b, `<h2>ピッキング伝票 No.%d</h2>`, slip.SlipNumber)
	b.WriteString(`<table><tr><th>商品コード</th><th>商品名</th><th>棚番</th><th>数量</th></tr>`)
	for _, t := range slip.Tasks {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>`,
			trainer.EscapeHTML(t.Product.Code),
			trainer.EscapeHTML(t.Product.Name),
			trainer.EscapeHTML(t.Product.Location),
			t.Quantity,
		)
	}
	b.WriteString(`</table></div>`)
	return b.String()
}

func toSessionResponse(s *entity.TrainingSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID:  s.ID,
		Mode:       s.Mode,
		Slips:      s.Slips,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}
