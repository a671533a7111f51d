//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_post_test
package user_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/internal/service/user"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Register(ctx context.Context, reg user.Registration) (*entities.User, error)
}
