package user

import "storefront/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entities.RoleType(u.Role),
		Blocked:      u.Blocked,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.Name != nil {
		userDB.Name = userModify.Name
	}
	if userModify.Email != nil {
		userDB.Email = userModify.Email
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}
	if userModify.Blocked != nil {
		userDB.Blocked = userModify.Blocked
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
