package entity

import "time"

// TrainingSession は伝票モード 1 回分のセッション。Slips は jsonb で永続化する。
// FinishedAt が nil の間は進行中で、結果送信時に確定する。
type TrainingSession struct {
	ID         string
	UserID     string
	Mode       string
	TimeLimit  *int // 秒。制限時間なしは nil
	Slips      []Slip
	StartedAt  time.Time
	FinishedAt *time.Time
}
