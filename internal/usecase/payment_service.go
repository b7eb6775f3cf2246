package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/validate"
	"github.com/google/uuid"
)

var _ ports.PaymentService = (*PaymentService)(nil)

// paymentValidator — проверка запроса на оплату.
type paymentValidator interface {
	ValidatePayment(ctx context.Context, req *domain.PaymentRequest) error
}

// PaymentConfig — реквизиты платёжных способов.
type PaymentConfig struct {
	YooKassaShopID string
	CryptoDiscount float64
}

// PaymentService — выдача ссылки на оплату. Реальных вызовов платёжных систем нет:
// ссылка ЮKassa формируется по новому идентификатору, для остальных способов — тестовая страница.
type PaymentService struct {
	validator paymentValidator
	cfg       PaymentConfig
	log       ports.Logger
	newID     func() string
}

func NewPaymentService(validator paymentValidator, cfg PaymentConfig, log ports.Logger) *PaymentService {
	return &PaymentService{validator: validator, cfg: cfg, log: log, newID: uuid.NewString}
}

// CreatePayment — ссылка на оплату по способу; пустой способ считается yookassa.
func (s *PaymentService) CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentLink, error) {
	if err := s.validator.ValidatePayment(ctx, req); err != nil {
		s.log.Warnf(ctx, "payment rejected: %v", err)
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodYooKassa
	}
	orderID := strconv.FormatInt(req.OrderID, 10)

	switch {
	case method == domain.PaymentMethodYooKassa && s.cfg.YooKassaShopID != "":
		id := s.newID()
		s.log.Infof(ctx, "yookassa payment created order_id=%s payment_id=%s", orderID, id)
		return &domain.PaymentLink{
			Success:    true,
			PaymentURL: "https://yookassa.ru/payments/" + id,
			PaymentID:  id,
		}, nil

	case method == domain.PaymentMethodCrypto:
		final := req.Amount - s.cfg.CryptoDiscount
		if final <= 0 {
			return nil, fmt.Errorf("%w: amount must exceed crypto discount %v", validate.ErrInvalidPayment, s.cfg.CryptoDiscount)
		}
		finalStr := strconv.FormatFloat(final, 'f', -1, 64)
		s.log.Infof(ctx, "crypto payment created order_id=%s final_amount=%s", orderID, finalStr)
		return &domain.PaymentLink{
			Success:     true,
			PaymentURL:  "/crypto-payment?amount=" + finalStr + "&order_id=" + orderID,
			PaymentID:   "crypto_" + orderID,
			Discount:    s.cfg.CryptoDiscount,
			FinalAmount: final,
		}, nil

	default:
		return &domain.PaymentLink{
			Success:    true,
			PaymentURL: "/payment/success?order_id=" + orderID,
			PaymentID:  "test_" + orderID,
		}, nil
	}
}
