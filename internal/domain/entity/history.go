package entity

import "time"

// 練習モード。
const (
	ModeNormal     = "normal"
	ModeTimeAttack = "timeAttack"
	ModeSlip       = "slip"
)

// HistoryEntry は 1 回の練習結果(追記専用ログ)。
// Mode が空のエントリはブラウザ版初期のレガシーデータで、取り込み時に normal へ補完する。
// timeAttack の自己ベストは Score ではなく TotalAnswered で比較する(制限時間内の回答数)。
type HistoryEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Mode          string    `json:"mode"`
	Score         int       `json:"score"`
	TotalAnswered int       `json:"totalAnswered"`
	TimeLimit     *int      `json:"timeLimit,omitempty"` // 秒。timeAttack のみ
	PlayedAt      time.Time `json:"playedAt"`
}
