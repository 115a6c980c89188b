package entity

import "time"

// User のロール。
const (
	RoleAdmin   = "admin"   // カタログ管理者
	RoleTrainee = "trainee" // 練習者
)

// User はシステムの利用者。練習履歴は UserID で紐づく。
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt ハッシュ。平文は永続化後ドメインに存在しない
	Name         string
	Role         string // admin, trainee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
