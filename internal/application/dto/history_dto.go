package dto

import "time"

// RecordHistoryRequest は練習結果(normal / timeAttack)の記録入力。
// 伝票モードの結果はセッション送信時に記録されるため、ここでは扱わない。
type RecordHistoryRequest struct {
	Mode          string `json:"mode"`
	Score         int    `json:"score"`
	TotalAnswered int    `json:"totalAnswered"`
	TimeLimit     *int   `json:"timeLimit"` // 秒。timeAttack のみ
}

// HistoryEntryResponse は履歴 1 件の出力。PlayedAtText は表示用の整形済み文字列。
type HistoryEntryResponse struct {
	ID            string    `json:"id"`
	Mode          string    `json:"mode"`
	Score         int       `json:"score"`
	TotalAnswered int       `json:"totalAnswered"`
	TimeLimit     *int      `json:"timeLimit,omitempty"`
	PlayedAt      time.Time `json:"playedAt"`
	PlayedAtText  string    `json:"playedAtText"`
}

// HistoryListResponse は履歴一覧(追記順)。
type HistoryListResponse struct {
	Items []HistoryEntryResponse `json:"items"`
}

// BestScoreResponse は自己ベスト。記録が無ければ best は null。
type BestScoreResponse struct {
	Best *int `json:"best"`
}

// ImportHistoryEntry はブラウザ版エクスポート由来の履歴 1 件。
// mode が無いレガシー形式を許容し、取り込み時に normal へ補完する。
type ImportHistoryEntry struct {
	Mode          string    `json:"mode"`
	Score         int       `json:"score"`
	TotalAnswered int       `json:"totalAnswered"`
	TimeLimit     *int      `json:"timeLimit"`
	PlayedAt      time.Time `json:"playedAt"`
}

// ImportHistoryRequest はレガシー履歴の一括取り込み入力。
type ImportHistoryRequest struct {
	History []ImportHistoryEntry `json:"history"`
}
