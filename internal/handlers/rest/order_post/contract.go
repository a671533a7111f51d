//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Checkout(ctx context.Context, actor entities.Actor, cart entities.Cart, details order.CheckoutDetails) (*entities.Order, error)
}
