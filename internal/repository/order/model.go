package order

import "time"

type OrderDB struct {
	ID              string
	UserID          string
	UserName        string
	UserEmail       string
	Total           float64
	Status          string
	ShippingAddress []byte
	Phone           string
	PaymentInfo     []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	OrderID   string
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}
