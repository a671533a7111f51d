package auth

import (
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type TokenParser interface {
	Parse(tokenString string) (entities.Actor, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
