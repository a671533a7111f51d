package entities

// Actor аутентифицированный инициатор запроса, извлекается из JWT-claims.
// Вход для всех ролевых проверок.
type Actor struct {
	UserID string
	Name   string
	Email  string
	Role   RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
