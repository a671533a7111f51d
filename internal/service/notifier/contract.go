//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}
