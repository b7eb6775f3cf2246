package ports

import "context"

// Logger — контракт логгера сервиса. Контекст первым аргументом:
// реализация достаёт из него request_id, order_id и trace-метаданные.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
