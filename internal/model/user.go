package model

import (
	"time"
)

type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the decoded payload of a bearer token.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username}
}
