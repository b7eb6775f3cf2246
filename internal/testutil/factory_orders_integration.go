//go:build integration

package testutil

import (
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

var orderSeq atomic.Int64

// NextOrderID — уникальный в рамках процесса id в формате сервера (Unix-миллисекунды).
func NextOrderID() int64 {
	return time.Now().UnixMilli()*1000 + orderSeq.Add(1)%1000
}

// MakeOrder — мини-генератор принятого заказа (худи × 2 + доставка).
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		OrderID: NextOrderID(),
		Customer: domain.Customer{
			Name:  "Иван Петров",
			Phone: "+7 900 000-00-00",
			Email: "ivan@example.com",
			Address: domain.Address{
				City:       "Москва",
				Address:    "ул. Примерная, 1",
				PostalCode: "101000",
			},
		},
		Items: []domain.Item{
			{Title: "Dark Hoodie", Size: "L", Quantity: 2, Price: 6000},
		},
		Delivery:  domain.Delivery{Method: "СДЭК", Price: 300},
		Total:     12300,
		Timestamp: now.Format("02.01.2006 15:04"),
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithComments(c string) func(*domain.Order) {
	return func(o *domain.Order) { o.Comments = c }
}

func WithPaymentMethod(m string) func(*domain.Order) {
	return func(o *domain.Order) { o.PaymentMethod = m }
}

func WithItems(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = make([]domain.Item, 0, n)
		for i := 0; i < n; i++ {
			o.Items = append(o.Items, domain.Item{
				Title:    "Item",
				Size:     "M",
				Quantity: 1,
				Price:    float64(100 * (i + 1)),
			})
		}
		o.Total = domain.ItemsTotal(o.Items) + o.Delivery.Price - o.Discount
	}
}
