package order

import (
	"math"
	"strings"

	"storefront/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func validateItems(items []entities.CartItem) error {
	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.Name) == "" {
			return ErrInvalidItem
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
			return ErrInvalidItem
		}
	}
	return nil
}

// totalsMatch сравнивает заявленную клиентом сумму с пересчитанной
// с точностью до цента.
func totalsMatch(submitted, computed float64) bool {
	return math.Abs(submitted-computed) < 0.005
}
