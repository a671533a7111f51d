//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_test
package product

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, product entities.Product) error
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	GetAll(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	Delete(ctx context.Context, id string) error
}
