// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые прокидываются
// через context.Context (request_id, order_id, trace_id). HTTP-слой, фоновая доставка
// уведомлений и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyOrderID   ctxKey = "order_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithOrderID кладёт номер заказа в контекст; нулевой номер игнорируется.
// Нужен, чтобы строки логов фоновой доставки связывались с заказом.
func WithOrderID(ctx context.Context, orderID int64) context.Context {
	if ctx == nil || orderID == 0 {
		return ctx
	}
	return context.WithValue(ctx, KeyOrderID, orderID)
}

// OrderIDFromContext достаёт номер заказа.
func OrderIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(KeyOrderID).(int64); ok && v != 0 {
		return v, true
	}
	return 0, false
}
