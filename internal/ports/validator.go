package ports

import (
	"context"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

// OrderValidator — проверка входящего заказа до назначения серверных полей.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.OrderRequest) error
}
