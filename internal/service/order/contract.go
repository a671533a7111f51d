//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// EventPublisher доставляет доменные события в шину. Публикация не должна
// влиять на исход пользовательской операции, поэтому ошибок не возвращает:
// адаптер сам логирует сбои доставки.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order entities.Order)
	PublishOrderStatusChanged(ctx context.Context, order entities.Order, oldStatus entities.OrderStatusType)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
