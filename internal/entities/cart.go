package entities

import "math"

// Cart клиентский агрегат корзины. Передается по значению между UI и
// оформлением заказа, на сервере не хранится.
type Cart struct {
	Items []CartItem
}

type CartItem struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// Add добавляет позицию. Повторное добавление того же товара увеличивает
// количество существующей строки, а не создает дубль.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove удаляет строку товара целиком.
func (c *Cart) Remove(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// Decrement уменьшает количество на единицу. Количество ниже единицы не
// допускается: строка в этом случае удаляется.
func (c *Cart) Decrement(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if c.Items[i].Quantity <= 1 {
			c.Remove(productID)
			return
		}
		c.Items[i].Quantity--
		return
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total сумма по всем строкам, округленная до центов.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}
