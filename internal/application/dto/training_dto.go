package dto

import (
	"time"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
)

// StartPracticeRequest は通常練習・タイムアタックの開始入力。
type StartPracticeRequest struct {
	Mode      string `json:"mode"`      // normal | timeAttack
	Count     int    `json:"count"`     // 出題数。0 なら設定のデフォルト
	TimeLimit *int   `json:"timeLimit"` // 秒。timeAttack のみ
}

// PracticeResponse は出題されたタスク列。
type PracticeResponse struct {
	Mode      string        `json:"mode"`
	Tasks     []entity.Task `json:"tasks"`
	TimeLimit *int          `json:"timeLimit,omitempty"`
}

// StartSlipsRequest は伝票モードの開始入力。0 は設定のデフォルトを使う。
type StartSlipsRequest struct {
	SlipCount    int `json:"slipCount"`
	ItemsPerSlip int `json:"itemsPerSlip"`
}

// SessionResponse は伝票モードのセッション。
type SessionResponse struct {
	SessionID  string        `json:"sessionId"`
	Mode       string        `json:"mode"`
	Slips      []entity.Slip `json:"slips"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt *time.Time    `json:"finishedAt,omitempty"`
}

// SubmitSlipsRequest は回答済み伝票の送信入力。
// Slips は開始時に返したものを UI が completed / found を埋めて送り返す。
type SubmitSlipsRequest struct {
	Slips     []entity.Slip `json:"slips"`
	ElapsedMs int64         `json:"elapsedMs"`
}

// SubmitSlipsResponse は採点結果。DurationText は「M分S秒」形式の表示用文字列。
type SubmitSlipsResponse struct {
	AllCompleted   bool   `json:"allCompleted"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	CorrectCount   int    `json:"correctCount"`
	DurationText   string `json:"durationText"`
	HistoryID      string `json:"historyId"`
}
