package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// Order снимок покупки: позиции, суммы и данные покупателя копируются
// в момент оформления и после создания не меняются. Мутируется только Status.
type Order struct {
	ID              string
	UserID          string
	UserName        string
	UserEmail       string
	Items           []OrderItem
	Total           float64
	Status          OrderStatusType
	ShippingAddress json.RawMessage
	Phone           string
	PaymentInfo     json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem позиция заказа, снимок товара на момент оформления.
type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// ParseOrderStatus сопоставляет строку со статусом без учета регистра
// и возвращает нормализованное (нижний регистр) значение.
func ParseOrderStatus(s string) (OrderStatusType, bool) {
	status := OrderStatusType(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return status, true
	default:
		return "", false
	}
}

// OrderModify частичное обновление заказа, nil-поля не трогаем.
type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}

// OrderFilter параметры выборки заказов.
type OrderFilter struct {
	UserID *string
}
