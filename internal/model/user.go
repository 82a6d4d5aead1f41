package model

import (
	"time"

	"github.com/google/uuid"
)

// User 使用者模型
type User struct {
	ID           int       `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar,omitempty" db:"avatar"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateUserParams 個人資料更新參數
type UpdateUserParams struct {
	Name   *string
	Avatar *string
}

// AuthResponse 登入/註冊回應
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
