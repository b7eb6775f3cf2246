package domain

import (
	"math"
	"time"
)

// Address — адрес доставки покупателя.
type Address struct {
	City       string `json:"city"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
}

// Customer — контактные данные покупателя.
type Customer struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Item — позиция корзины.
type Item struct {
	Title    string  `json:"title"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// Delivery — способ и стоимость доставки.
type Delivery struct {
	Method string  `json:"method"`
	Price  float64 `json:"price" validate:"gte=0"`
}

// Order — принятый заказ. Живёт только в рамках обработки запроса и доставки уведомлений.
type Order struct {
	OrderID       int64     `json:"order_id"`
	Customer      Customer  `json:"customer"`
	Items         []Item    `json:"items"`
	Delivery      Delivery  `json:"delivery"`
	Discount      float64   `json:"discount,omitempty"`
	Total         float64   `json:"total"`
	Comments      string    `json:"comments,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Timestamp     string    `json:"timestamp"`
	CreatedAt     time.Time `json:"created_at"`
}

// CustomerRequest — покупатель во входящем payload; адрес обязателен.
type CustomerRequest struct {
	Name    string   `json:"name" validate:"required"`
	Phone   string   `json:"phone" validate:"required"`
	Email   string   `json:"email" validate:"required"`
	Address *Address `json:"address" validate:"required"`
}

// OrderRequest — заказ в том виде, в каком его присылает витрина.
// Указатели позволяют отличить отсутствующее поле от нулевого значения.
// order_id и timestamp клиента не читаются: их всегда назначает сервер.
type OrderRequest struct {
	Customer      *CustomerRequest `json:"customer" validate:"required"`
	Items         []Item           `json:"items" validate:"required,min=1,dive"`
	Delivery      *Delivery        `json:"delivery" validate:"required"`
	Total         *float64         `json:"total,omitempty" validate:"omitempty,gte=0"`
	Discount      float64          `json:"discount,omitempty" validate:"gte=0"`
	Comments      string           `json:"comments,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
}

// OrderReceipt — ответ на успешный приём заказа.
type OrderReceipt struct {
	Success   bool   `json:"success"`
	OrderID   int64  `json:"order_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ItemsTotal — сумма price×quantity по всем позициям.
func ItemsTotal(items []Item) float64 {
	var sum float64
	for i := range items {
		sum += items[i].Price * float64(items[i].Quantity)
	}
	return roundMoney(sum)
}

// ComputedTotal — итог, посчитанный сервером: товары + доставка − скидка.
func (r *OrderRequest) ComputedTotal() float64 {
	if r == nil {
		return 0
	}
	total := ItemsTotal(r.Items) - r.Discount
	if r.Delivery != nil {
		total += r.Delivery.Price
	}
	return roundMoney(total)
}

// Order — переносит данные запроса в заказ.
// Итог берётся из запроса, если клиент его прислал и recompute=false, иначе считается.
// OrderID/Timestamp/CreatedAt заполняет вызывающая сторона.
func (r *OrderRequest) Order(recompute bool) Order {
	var order Order
	if r == nil {
		return order
	}
	if r.Customer != nil {
		order.Customer = Customer{
			Name:  r.Customer.Name,
			Phone: r.Customer.Phone,
			Email: r.Customer.Email,
		}
		if r.Customer.Address != nil {
			order.Customer.Address = *r.Customer.Address
		}
	}
	if r.Delivery != nil {
		order.Delivery = *r.Delivery
	}
	order.Items = append([]Item(nil), r.Items...)
	order.Discount = r.Discount
	order.Comments = r.Comments
	order.PaymentMethod = r.PaymentMethod

	if r.Total != nil && !recompute {
		order.Total = *r.Total
	} else {
		order.Total = r.ComputedTotal()
	}
	return order
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
