package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type Product struct {
	repository Repository
}

func New(repository Repository) *Product {
	return &Product{
		repository: repository,
	}
}

// CreateProduct добавляет товар в каталог. Только для админа.
func (s *Product) CreateProduct(ctx context.Context, actor entities.Actor, productModify entities.ProductModify) (*entities.Product, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if productModify.Name == nil || productModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*productModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPrice(*productModify.Price) {
		return nil, ErrInvalidPrice
	}
	if productModify.Stock != nil && !isValidStock(*productModify.Stock) {
		return nil, ErrInvalidStock
	}

	now := time.Now().UTC()
	newProduct := entities.Product{
		ID:        uuid.NewString(),
		Name:      *productModify.Name,
		Price:     *productModify.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if productModify.Description != nil {
		newProduct.Description = *productModify.Description
	}
	if productModify.Image != nil {
		newProduct.Image = *productModify.Image
	}
	if productModify.Category != nil {
		newProduct.Category = *productModify.Category
	}
	if productModify.Stock != nil {
		newProduct.Stock = *productModify.Stock
	}

	if err := s.repository.Create(ctx, newProduct); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return &newProduct, nil
}

// UpdateProduct частично обновляет товар. Только для админа.
func (s *Product) UpdateProduct(ctx context.Context, actor entities.Actor, productModify entities.ProductModify) (*entities.Product, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if productModify.ID == nil || strings.TrimSpace(*productModify.ID) == "" {
		return nil, ErrInvalidProductID
	}
	if productModify.Name == nil &&
		productModify.Description == nil &&
		productModify.Price == nil &&
		productModify.Image == nil &&
		productModify.Category == nil &&
		productModify.Stock == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if productModify.Name != nil && !isValidName(*productModify.Name) {
		return nil, ErrInvalidName
	}
	if productModify.Price != nil && !isValidPrice(*productModify.Price) {
		return nil, ErrInvalidPrice
	}
	if productModify.Stock != nil && !isValidStock(*productModify.Stock) {
		return nil, ErrInvalidStock
	}

	updated, err := s.repository.Update(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// GetProduct часть публичного каталога, ролевой проверки нет.
func (s *Product) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidProductID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return found, nil
}

func (s *Product) GetProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

// DeleteProduct удаляет товар из каталога. Только для админа. Каскадных
// эффектов нет: позиции в уже созданных заказах являются снимками.
func (s *Product) DeleteProduct(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidProductID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
