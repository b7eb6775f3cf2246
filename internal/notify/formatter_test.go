package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

func hoodieOrder() *domain.Order {
	return &domain.Order{
		OrderID: 1735725600000,
		Customer: domain.Customer{
			Name:  "Иван",
			Phone: "+79000000000",
			Email: "ivan@example.com",
			Address: domain.Address{
				City:       "Москва",
				Address:    "ул. Примерная, 1",
				PostalCode: "101000",
			},
		},
		Items:     []domain.Item{{Title: "Hoodie", Size: "M", Quantity: 2, Price: 6000}},
		Delivery:  domain.Delivery{Method: "Courier", Price: 300},
		Total:     12300,
		Timestamp: "01.01.2025 13:00",
	}
}

func TestFormatOrder_Full(t *testing.T) {
	msg := FormatOrder(hoodieOrder())

	for _, want := range []string{
		"<b>🛍️ НОВЫЙ ЗАКАЗ #1735725600000</b>",
		"• Hoodie (Размер: M) × 2 - 12000 ₽",
		"Товары: 12000 ₽",
		"Доставка: 300 ₽",
		"<b>Итого: 12300 ₽</b>",
		"Courier\nГород: Москва\nАдрес: ул. Примерная, 1\nИндекс: 101000",
		"Иван\n📞 +79000000000\n📧 ivan@example.com",
		"<b>💬 Комментарий:</b>\nНет комментария",
		"<b>💳 Способ оплаты:</b>\nНе выбран",
		"<i>🕒 01.01.2025 13:00</i>",
	} {
		assert.Contains(t, msg, want)
	}
	assert.NotContains(t, msg, "Скидка")
}

func TestFormatOrder_DiscountAndOptionalFields(t *testing.T) {
	o := hoodieOrder()
	o.Discount = 200
	o.Total = 12100
	o.Comments = "Позвонить заранее"
	o.PaymentMethod = "crypto"

	msg := FormatOrder(o)
	assert.Contains(t, msg, "Скидка: -200 ₽")
	assert.Contains(t, msg, "<b>Итого: 12100 ₽</b>")
	assert.Contains(t, msg, "Позвонить заранее")
	assert.Contains(t, msg, "<b>💳 Способ оплаты:</b>\ncrypto")
}

func TestFormatOrder_EscapesHTML(t *testing.T) {
	o := hoodieOrder()
	o.Customer.Name = `<script>alert("x")</script>`
	o.Comments = "a & b"

	msg := FormatOrder(o)
	assert.NotContains(t, msg, "<script>")
	assert.Contains(t, msg, "&lt;script&gt;")
	assert.Contains(t, msg, "a &amp; b")
}

func TestFormatOrder_NeverFails(t *testing.T) {
	assert.NotPanics(t, func() {
		msg := FormatOrder(nil)
		assert.True(t, strings.HasPrefix(msg, "<b>🛍️ НОВЫЙ ЗАКАЗ</b>"))
		assert.Contains(t, msg, "Город: Не указан")
		assert.Contains(t, msg, "<b>Итого: 0 ₽</b>")
	})

	msg := FormatOrder(&domain.Order{Items: []domain.Item{{Quantity: 1, Price: 99.99}}})
	assert.Contains(t, msg, "• Не указан (Размер: Не указан) × 1 - 99.99 ₽")
}
