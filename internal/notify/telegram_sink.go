package notify

import (
	"context"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
)

var _ ports.OrderSink = (*TelegramSink)(nil)

// TelegramSink — получатель заказов: форматирует сообщение и отправляет его через Notifier.
type TelegramSink struct {
	notifier ports.Notifier
	format   func(*domain.Order) string
}

func NewTelegramSink(n ports.Notifier) *TelegramSink {
	return &TelegramSink{notifier: n, format: FormatOrder}
}

func (s *TelegramSink) Name() string { return "telegram" }

// Deliver — ошибка Notifier возвращается как есть; решение о логировании за диспетчером.
func (s *TelegramSink) Deliver(ctx context.Context, order *domain.Order) error {
	return s.notifier.Send(ctx, s.format(order))
}
