package product

import "time"

type ProductDB struct {
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

type ProductModifyDB struct {
	ID          *string
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *string
	Stock       *int
}
