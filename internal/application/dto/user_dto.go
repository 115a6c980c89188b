package dto

import "time"

// RegisterRequest はユーザー登録の入力。
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role"` // 省略時は trainee
}

// LoginRequest はログインの入力。
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse はユーザー 1 件の出力(パスワードは含めない)。
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse はログイン結果。
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
