package ports

import (
	"context"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

// OrderSink — получатель принятых заказов (Telegram, Kafka).
type OrderSink interface {
	Name() string
	Deliver(ctx context.Context, order *domain.Order) error
}

// OrderDispatcher — неблокирующая передача заказа получателям.
// Результат доставки вызывающей стороне недоступен.
type OrderDispatcher interface {
	Dispatch(ctx context.Context, order *domain.Order) error
}
