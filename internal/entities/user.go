package entities

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         RoleType
	Blocked      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoleType string

const (
	RoleAdmin    RoleType = "admin"
	RoleCustomer RoleType = "customer"
)

const DefaultRole = RoleCustomer

func (r RoleType) String() string {
	return string(r)
}

// ParseRole распознает роль без учета регистра. Метка "user" из старых
// клиентов считается синонимом customer, а не отдельной ролью.
func ParseRole(s string) (RoleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "customer", "user":
		return RoleCustomer, true
	default:
		return "", false
	}
}

// UserModify частичное обновление пользователя, nil-поля не трогаем.
type UserModify struct {
	ID      *string
	Name    *string
	Email   *string
	Role    *RoleType
	Blocked *bool
}
