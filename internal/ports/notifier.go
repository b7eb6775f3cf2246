package ports

import "context"

// Notifier — отправка текстового уведомления в фиксированный чат.
type Notifier interface {
	Send(ctx context.Context, text string) error
	Configured() bool
}
