// Пакет notify — текст уведомления о заказе и его доставка в чат магазина.
package notify

import (
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

const (
	notSpecified = "Не указан"
	noComment    = "Нет комментария"
	noPayment    = "Не выбран"
)

// FormatOrder — HTML-сообщение (parse_mode=HTML) о заказе для чата магазина.
// Никогда не падает: пустые поля заменяются подстановками, пользовательский текст экранируется.
func FormatOrder(order *domain.Order) string {
	if order == nil {
		order = &domain.Order{}
	}

	var b strings.Builder
	b.Grow(512)

	b.WriteString("<b>🛍️ НОВЫЙ ЗАКАЗ")
	if order.OrderID > 0 {
		b.WriteString(" #")
		b.WriteString(strconv.FormatInt(order.OrderID, 10))
	}
	b.WriteString("</b>\n\n")

	b.WriteString("<b>📦 Товары:</b>\n")
	if len(order.Items) == 0 {
		b.WriteString(notSpecified)
		b.WriteString("\n")
	}
	for _, item := range order.Items {
		b.WriteString("• ")
		b.WriteString(text(item.Title))
		b.WriteString(" (Размер: ")
		b.WriteString(text(item.Size))
		b.WriteString(") × ")
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString(" - ")
		b.WriteString(money(item.Price * float64(item.Quantity)))
		b.WriteString(" ₽\n")
	}

	b.WriteString("\n<b>💰 Сумма:</b>\n")
	line(&b, "Товары: ", money(domain.ItemsTotal(order.Items))+" ₽")
	line(&b, "Доставка: ", money(order.Delivery.Price)+" ₽")
	if order.Discount != 0 {
		line(&b, "Скидка: ", "-"+money(order.Discount)+" ₽")
	}
	b.WriteString("<b>Итого: ")
	b.WriteString(money(order.Total))
	b.WriteString(" ₽</b>\n")

	addr := order.Customer.Address
	b.WriteString("\n<b>🚚 Доставка:</b>\n")
	line(&b, "", text(order.Delivery.Method))
	line(&b, "Город: ", text(addr.City))
	line(&b, "Адрес: ", text(addr.Address))
	line(&b, "Индекс: ", text(addr.PostalCode))

	b.WriteString("\n<b>👤 Клиент:</b>\n")
	line(&b, "", text(order.Customer.Name))
	line(&b, "📞 ", text(order.Customer.Phone))
	line(&b, "📧 ", text(order.Customer.Email))

	b.WriteString("\n<b>💬 Комментарий:</b>\n")
	line(&b, "", textOr(order.Comments, noComment))

	b.WriteString("\n<b>💳 Способ оплаты:</b>\n")
	line(&b, "", textOr(order.PaymentMethod, noPayment))

	b.WriteString("\n<i>🕒 ")
	b.WriteString(html.EscapeString(order.Timestamp))
	b.WriteString("</i>")

	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(value)
	b.WriteString("\n")
}

func text(s string) string { return textOr(s, notSpecified) }

// textOr — экранированное значение или подстановка, если строка пустая.
func textOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return html.EscapeString(s)
}

// money — сумма до копеек без лишних нулей: 6000, 12300, 99.99.
func money(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
