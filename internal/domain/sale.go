package domain

import "time"

// Sale — зафиксированная продажа товара.
// TotalPrice должен равняться Quantity × цена на момент продажи, но это не проверяется.
type Sale struct {
	ID            int64
	ProductID     int64
	Quantity      int
	TotalPrice    int64
	CustomerName  *string
	CustomerPhone *string
	SaleDate      time.Time
}

func NewSale(productID int64, quantity int, totalPrice int64, customerName, customerPhone *string, saleDate time.Time) *Sale {
	return &Sale{
		ProductID:     productID,
		Quantity:      quantity,
		TotalPrice:    totalPrice,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		SaleDate:      saleDate,
	}
}
