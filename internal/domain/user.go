package domain

import "time"

type UserType string

const (
	UserTypeUser  UserType = "USER"
	UserTypeAdmin UserType = "ADMIN"
)

type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Surname  string   `json:"surname"`
	Email    string   `json:"email"`
	Age      int      `json:"age"`
	Type     UserType `json:"user_type"`
	// PasswordHash never leaves the repository/auth layer.
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_on"`
	UpdatedAt    time.Time `json:"updated_on"`
}
