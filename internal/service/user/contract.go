//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, user entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	Delete(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
