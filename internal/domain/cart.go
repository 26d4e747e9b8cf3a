package domain

import "math"

// MaxItemQuantity — предел количества одного товара в заказе.
const MaxItemQuantity = 1000

// CartItem — строка корзины.
type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int
}

// Subtotal насыщается до math.MaxInt64; точную сумму даёт CheckedSubtotal.
func (i CartItem) Subtotal() int64 {
	sub, ok := i.CheckedSubtotal()
	if !ok {
		return math.MaxInt64
	}
	return sub
}

// CheckedSubtotal возвращает false, если цена или количество отрицательны
// либо произведение не помещается в int64.
func (i CartItem) CheckedSubtotal() (int64, bool) {
	q := int64(i.Quantity)
	if i.UnitPrice < 0 || q < 0 {
		return 0, false
	}
	if i.UnitPrice != 0 && q > math.MaxInt64/i.UnitPrice {
		return 0, false
	}
	return i.UnitPrice * q, true
}

// Cart — неизменяемая корзина: каждая операция возвращает новую корзину,
// исходная остаётся прежней.
type Cart struct {
	items []CartItem
}

func NewCart(items ...CartItem) Cart {
	c := Cart{}
	for _, it := range items {
		c = c.Add(it)
	}
	return c
}

// Items возвращает копию строк в порядке добавления.
func (c Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c Cart) Len() int      { return len(c.items) }
func (c Cart) IsEmpty() bool { return len(c.items) == 0 }

// Add добавляет товар; для уже лежащего в корзине товара количество суммируется.
// Строки с неположительным количеством игнорируются.
func (c Cart) Add(item CartItem) Cart {
	if item.Quantity <= 0 {
		return c
	}

	items := c.Items()
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity = addQuantity(items[i].Quantity, item.Quantity)
			return Cart{items: items}
		}
	}

	return Cart{items: append(items, item)}
}

// SetQuantity задаёт количество; quantity <= 0 удаляет строку.
func (c Cart) SetQuantity(productID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	items := c.Items()
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return Cart{items: items}
}

func (c Cart) Remove(productID int64) Cart {
	items := make([]CartItem, 0, len(c.items))
	for _, it := range c.items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return Cart{items: items}
}

// Total — сумма корзины в сентаво, насыщается до math.MaxInt64.
func (c Cart) Total() int64 {
	total, ok := c.CheckedTotal()
	if !ok {
		return math.MaxInt64
	}
	return total
}

// CheckedTotal возвращает false при переполнении суммы.
func (c Cart) CheckedTotal() (int64, bool) {
	var total int64
	for _, it := range c.items {
		sub, ok := it.CheckedSubtotal()
		if !ok || total > math.MaxInt64-sub {
			return 0, false
		}
		total += sub
	}
	return total, true
}

// ExceedsQuantity сообщает, есть ли строка с количеством больше limit.
func (c Cart) ExceedsQuantity(limit int) bool {
	for _, it := range c.items {
		if it.Quantity > limit {
			return true
		}
	}
	return false
}

func addQuantity(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
