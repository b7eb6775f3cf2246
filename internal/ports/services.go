package ports

import (
	"context"

	"github.com/Gunvolt24/tg_store/internal/domain"
)

// OrderIntakeService — приём заказа из сырого тела запроса.
type OrderIntakeService interface {
	AcceptOrder(ctx context.Context, raw []byte) (*domain.OrderReceipt, error)
}

// PaymentService — создание ссылки на оплату.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentLink, error)
}

// AddressSuggester — подсказки адреса по введённой строке.
type AddressSuggester interface {
	Suggest(ctx context.Context, query string) []domain.AddressSuggestion
}

// ProductCatalog — чтение каталога товаров.
type ProductCatalog interface {
	Products(ctx context.Context, limit, offset int) []domain.Product
}

// Diagnostics — данные для /health и /api/debug.
type Diagnostics interface {
	Health(ctx context.Context) domain.HealthReport
	Snapshot(ctx context.Context) domain.DebugSnapshot
}
