package entities

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductModify частичное обновление товара, nil-поля не трогаем.
type ProductModify struct {
	ID          *string
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *string
	Stock       *int
}
