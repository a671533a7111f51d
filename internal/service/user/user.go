package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type User struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *User {
	return &User{
		repository: repository,
		txManager:  txManager,
	}
}

// Registration публичные данные регистрации.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Register создает покупателя. Хеш пароля наружу не отдается ни в одном
// ответе, роль при регистрации всегда customer.
func (s *User) Register(ctx context.Context, reg Registration) (*entities.User, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(reg.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(reg.Password) {
		return nil, ErrInvalidPassword
	}

	now := time.Now().UTC()
	newUser := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(reg.Name),
		Email:        strings.ToLower(strings.TrimSpace(reg.Email)),
		PasswordHash: hashPassword(reg.Password),
		Role:         entities.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repository.GetByEmail(ctx, newUser.Email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
		return s.repository.Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	return sanitize(&newUser), nil
}

// GetUsers список пользователей для админки, без хешей паролей.
func (s *User) GetUsers(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateUser меняет имя, почту, роль или блокировку. Только для админа.
// Снятие роли admin с последнего админа отклоняется.
func (s *User) UpdateUser(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (*entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if userModify.ID == nil || strings.TrimSpace(*userModify.ID) == "" {
		return nil, ErrInvalidUserID
	}
	if userModify.Name == nil && userModify.Email == nil && userModify.Role == nil && userModify.Blocked == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if userModify.Email != nil && !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}

	var updated *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if userModify.Role != nil && *userModify.Role != entities.RoleAdmin {
			if err := s.ensureNotLastAdmin(ctx, *userModify.ID); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, userModify)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sanitize(updated), nil
}

// DeleteUser удаляет пользователя. Только для админа; последний админ
// защищен от удаления. Заказы пользователя не затрагиваются: в них лежит
// снимок покупателя, а не живая ссылка.
func (s *User) DeleteUser(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidUserID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureNotLastAdmin(ctx, id); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

func (s *User) ensureNotLastAdmin(ctx context.Context, id string) error {
	target, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if target.Role != entities.RoleAdmin {
		return nil
	}

	admins, err := s.repository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// hashPassword sha256-хеш в hex, как в исходной системе учетных записей.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func sanitize(u *entities.User) *entities.User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
