package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

type Order struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(repository Repository, publisher EventPublisher, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// CheckoutDetails сопроводительные данные оформления. Адрес и платежная
// информация непрозрачны для жизненного цикла заказа и хранятся как есть.
type CheckoutDetails struct {
	Total           float64
	ShippingAddress json.RawMessage
	Phone           string
	PaymentInfo     json.RawMessage
}

// Checkout превращает снимок корзины в заказ со статусом pending.
// Это единственный путь создания заказа. Сумма пересчитывается на сервере,
// расхождение с заявленной клиентом суммой отклоняется.
func (s *Order) Checkout(ctx context.Context, actor entities.Actor, cart entities.Cart, details CheckoutDetails) (*entities.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if actor.UserID == "" || actor.Email == "" {
		return nil, ErrMissingPurchaser
	}
	if err := validateItems(cart.Items); err != nil {
		return nil, err
	}

	computedTotal := cart.Total()
	if !totalsMatch(details.Total, computedTotal) {
		return nil, fmt.Errorf("%w: submitted %.2f, computed %.2f", ErrTotalMismatch, details.Total, computedTotal)
	}

	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, entities.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	now := time.Now().UTC()
	newOrder := entities.Order{
		ID:              uuid.NewString(),
		UserID:          actor.UserID,
		UserName:        actor.Name,
		UserEmail:       actor.Email,
		Items:           items,
		Total:           computedTotal,
		Status:          entities.OrderPending,
		ShippingAddress: details.ShippingAddress,
		Phone:           details.Phone,
		PaymentInfo:     details.PaymentInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Create(ctx, newOrder)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	OrdersCreatedTotal.Inc()
	s.publisher.PublishOrderCreated(ctx, newOrder)

	return &newOrder, nil
}

// UpdateStatus переводит заказ в новый статус. Только для админа.
// Граф переходов не ограничен: допустим любой статус из фиксированного
// набора, включая движение назад.
func (s *Order) UpdateStatus(ctx context.Context, actor entities.Actor, orderID string, rawStatus string) (*entities.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	status, ok := entities.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus)
	}

	var updated *entities.Order
	var oldStatus entities.OrderStatusType

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		oldStatus = current.Status

		updated, err = s.repository.UpdateStatus(ctx, orderID, status)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if oldStatus != updated.Status {
		StatusTransitionsTotal.WithLabelValues(string(oldStatus), string(updated.Status)).Inc()
		s.publisher.PublishOrderStatusChanged(ctx, *updated, oldStatus)
	}

	return updated, nil
}

// List возвращает заказы с учетом роли: админ видит все (опционально сужая
// по user_id), покупатель — только собственные независимо от фильтра.
func (s *Order) List(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	if !actor.IsAdmin() {
		userID := actor.UserID
		if userID == "" {
			return nil, ErrMissingPurchaser
		}
		filter = entities.OrderFilter{UserID: &userID}
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get возвращает заказ владельцу или админу.
func (s *Order) Get(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	found, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !actor.IsAdmin() && found.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	return found, nil
}

// Delete удаляет заказ без каскадных эффектов. Только для админа.
func (s *Order) Delete(ctx context.Context, actor entities.Actor, orderID string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	if err := s.repository.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CountByStatus агрегат для метрик, ролевой фильтрации не требует.
func (s *Order) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}
