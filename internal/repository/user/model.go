package user

import "time"

type UserDB struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Blocked      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID      *string
	Name    *string
	Email   *string
	Role    *string
	Blocked *bool
}
