package product

import (
	"math"
	"strings"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPrice(price float64) bool {
	return price >= 0 && !math.IsNaN(price) && !math.IsInf(price, 0)
}

func isValidStock(stock int) bool {
	return stock >= 0
}
