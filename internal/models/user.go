package models

import "time"

// Role — роль пользователя портала.
type Role string

const (
	RoleReporter Role = "reporter"
	RoleEditor   Role = "editor"
)

func (r Role) Valid() bool {
	return r == RoleReporter || r == RoleEditor
}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" example:"ana"`
	FullName string `json:"full_name" example:"Ana Torres"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret123"`
	Role     Role   `json:"role" example:"reporter"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"ana"`
	Password string `json:"password" example:"secret123"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}
