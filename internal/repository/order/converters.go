package order

import (
	"encoding/json"

	"storefront/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:              o.ID,
		UserID:          o.UserID,
		UserName:        o.UserName,
		UserEmail:       o.UserEmail,
		Items:           ToItemsDomain(items),
		Total:           o.Total,
		Status:          entities.OrderStatusType(o.Status),
		ShippingAddress: o.ShippingAddress,
		Phone:           o.Phone,
		PaymentInfo:     o.PaymentInfo,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToItemsDomain(itemsDB []OrderItemDB) []entities.OrderItem {
	if len(itemsDB) == 0 {
		return []entities.OrderItem{}
	}

	result := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = entities.OrderItem{
			ProductID: itemDB.ProductID,
			Name:      itemDB.Name,
			Price:     itemDB.Price,
			Quantity:  itemDB.Quantity,
		}
	}
	return result
}

func FromDomain(o *entities.Order) (*OrderDB, []OrderItemDB) {
	if o == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:              o.ID,
		UserID:          o.UserID,
		UserName:        o.UserName,
		UserEmail:       o.UserEmail,
		Total:           o.Total,
		Status:          o.Status.String(),
		ShippingAddress: jsonOrEmptyObject(o.ShippingAddress),
		Phone:           o.Phone,
		PaymentInfo:     jsonOrEmptyObject(o.PaymentInfo),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	itemsDB := make([]OrderItemDB, len(o.Items))
	for i, item := range o.Items {
		itemsDB[i] = OrderItemDB{
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return orderDB, itemsDB
}

// jsonOrEmptyObject подменяет отсутствующий JSON пустым объектом:
// jsonb колонки объявлены NOT NULL, а pgx кодирует nil []byte как NULL.
func jsonOrEmptyObject(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte(`{}`)
	}
	return raw
}
