package models

import "time"

type Analyst struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash []byte     `json:"-"`
	SuperAdmin   bool       `json:"super_admin"`
	Locked       bool       `json:"locked"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateAnalystRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	SuperAdmin bool   `json:"super_admin"`
}
