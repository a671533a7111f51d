package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/order"
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

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel, itemModels := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, user_id, user_name, user_email, total, status,
			shipping_address, phone, payment_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderModel.ID,
		orderModel.UserID,
		orderModel.UserName,
		orderModel.UserEmail,
		orderModel.Total,
		orderModel.Status,
		orderModel.ShippingAddress,
		orderModel.Phone,
		orderModel.PaymentInfo,
		orderModel.CreatedAt,
		orderModel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if len(itemModels) == 0 {
		return nil
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "name", "price", "quantity")
	for _, item := range itemModels {
		builder = builder.Values(item.OrderID, item.ProductID, item.Name, item.Price, item.Quantity)
	}

	itemsQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, itemsQuery, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `
		SELECT id, user_id, user_name, user_email, total, status,
			shipping_address, phone, payment_info, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.UserName,
			&orderModel.UserEmail,
			&orderModel.Total,
			&orderModel.Status,
			&orderModel.ShippingAddress,
			&orderModel.Phone,
			&orderModel.PaymentInfo,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderModel.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items[orderModel.ID]), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "user_id", "user_name", "user_email", "total", "status",
			"shipping_address", "phone", "payment_info", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.UserName,
			&orderModel.UserEmail,
			&orderModel.Total,
			&orderModel.Status,
			&orderModel.ShippingAddress,
			&orderModel.Phone,
			&orderModel.PaymentInfo,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	if len(orderModels) == 0 {
		return []entities.Order{}, nil
	}

	orderIDs := make([]string, len(orderModels))
	for i, orderModel := range orderModels {
		orderIDs[i] = orderModel.ID
	}

	itemsByOrder, err := r.getItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, len(orderModels))
	for i, orderModel := range orderModels {
		result[i] = *ToDomain(&orderModel, itemsByOrder[orderModel.ID])
	}
	return result, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, user_name, user_email, total, status,
			shipping_address, phone, payment_info, created_at, updated_at
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&orderModel.ID,
			&orderModel.UserID,
			&orderModel.UserName,
			&orderModel.UserEmail,
			&orderModel.Total,
			&orderModel.Status,
			&orderModel.ShippingAddress,
			&orderModel.Phone,
			&orderModel.PaymentInfo,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderModel.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items[orderModel.ID]), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	// позиции уходят каскадом по внешнему ключу
	query := `
		DELETE FROM orders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	query, args, err := qb.
		Select("order_id", "product_id", "name", "price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]OrderItemDB)
	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.Name,
			&itemModel.Price,
			&itemModel.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemsByOrder[itemModel.OrderID] = append(itemsByOrder[itemModel.OrderID], itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemsByOrder, nil
}
