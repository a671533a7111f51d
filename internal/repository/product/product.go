package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/product"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productEntity entities.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image, category, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		productEntity.ID,
		productEntity.Name,
		productEntity.Description,
		productEntity.Price,
		productEntity.Image,
		productEntity.Category,
		productEntity.Stock,
		productEntity.CreatedAt,
		productEntity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	query := `
		SELECT id, name, description, price, image, category, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var productModel ProductDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Price,
			&productModel.Image,
			&productModel.Category,
			&productModel.Stock,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Product, error) {
	query := `
		SELECT id, name, description, price, image, category, stock, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 8)
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Price,
			&productModel.Image,
			&productModel.Category,
			&productModel.Stock,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
		}
		productModels = append(productModels, productModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	return ToDomainList(productModels), nil
}

func (r *Repository) Update(ctx context.Context, productModifyEntity entities.ProductModify) (*entities.Product, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)

	builder := qb.
		Update("products")

	// опционнные поля
	if productModifyModel.Name != nil {
		builder = builder.Set("name", productModifyModel.Name)
	}
	if productModifyModel.Description != nil {
		builder = builder.Set("description", productModifyModel.Description)
	}
	if productModifyModel.Price != nil {
		builder = builder.Set("price", productModifyModel.Price)
	}
	if productModifyModel.Image != nil {
		builder = builder.Set("image", productModifyModel.Image)
	}
	if productModifyModel.Category != nil {
		builder = builder.Set("category", productModifyModel.Category)
	}
	if productModifyModel.Stock != nil {
		builder = builder.Set("stock", productModifyModel.Stock)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": productModifyModel.ID}).
		Suffix("RETURNING id, name, description, price, image, category, stock, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	var productModel ProductDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Price,
			&productModel.Image,
			&productModel.Category,
			&productModel.Stock,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("unexpected product repository update error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM products WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected product repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
