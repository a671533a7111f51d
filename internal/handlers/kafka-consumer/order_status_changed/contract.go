package order_status_changed

import (
	"context"

	"storefront/internal/events"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessStatusChange(ctx context.Context, event events.OrderStatusChanged) error
}
