package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/ctxmeta"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/Gunvolt24/tg_store/pkg/validate"
)

const timestampLayout = "02.01.2006 15:04"

var (
	// ErrPayloadTooLarge — тело запроса больше допустимого.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrMalformedPayload — тело не является JSON-объектом заказа.
	ErrMalformedPayload = validate.ErrMalformedJSON
	// ErrInvalidPayment — некорректный запрос на оплату.
	ErrInvalidPayment = validate.ErrInvalidPayment
)

var _ ports.OrderIntakeService = (*OrderService)(nil)

// OrderConfig — параметры приёма заказов.
type OrderConfig struct {
	MaxBodyBytes   int64
	Location       *time.Location // часовой пояс timestamp в уведомлении
	RecomputeTotal bool           // всегда пересчитывать итог на сервере
}

// OrderService — приём заказа: проверка, назначение серверных полей, передача в доставку.
// Результат доставки на ответ клиенту не влияет.
type OrderService struct {
	dispatcher ports.OrderDispatcher
	validator  ports.OrderValidator
	log        ports.Logger
	cfg        OrderConfig
	now        func() time.Time
	lastID     atomic.Int64
}

// OrderOption — настройка OrderService.
type OrderOption func(*OrderService)

// WithClock — подмена источника времени (для тестов).
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	dispatcher ports.OrderDispatcher,
	validator ports.OrderValidator,
	log ports.Logger,
	cfg OrderConfig,
	opts ...OrderOption,
) *OrderService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	s := &OrderService{
		dispatcher: dispatcher,
		validator:  validator,
		log:        log,
		cfg:        cfg,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AcceptOrder — принять заказ из сырого тела запроса.
// Шаги:
//  1. отсечь тело больше лимита до разбора;
//  2. строгий разбор JSON;
//  3. валидация (validate.ErrInvalidOrder с именем поля);
//  4. order_id и timestamp назначает сервер, итог считается при отсутствии;
//  5. неблокирующая передача в очередь доставки;
//  6. квитанция клиенту.
func (s *OrderService) AcceptOrder(ctx context.Context, raw []byte) (*domain.OrderReceipt, error) {
	if s.cfg.MaxBodyBytes > 0 && int64(len(raw)) > s.cfg.MaxBodyBytes {
		metrics.OrdersIntake.WithLabelValues("too_large").Inc()
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(raw), s.cfg.MaxBodyBytes)
	}

	req, err := validate.DecodeOrderRequest(raw)
	if err != nil {
		metrics.OrdersIntake.WithLabelValues("malformed").Inc()
		s.log.Warnf(ctx, "order rejected: %v", err)
		return nil, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		metrics.OrdersIntake.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "order rejected: %v", err)
		return nil, err
	}

	now := s.now().In(s.cfg.Location)
	order := req.Order(s.cfg.RecomputeTotal)
	order.OrderID = s.nextID(now)
	order.Timestamp = now.Format(timestampLayout)
	order.CreatedAt = now

	ctx = ctxmeta.WithOrderID(ctx, order.OrderID)

	if req.Total != nil {
		if computed := req.ComputedTotal(); math.Abs(*req.Total-computed) > 0.009 {
			s.log.Warnf(ctx, "client total %v differs from computed %v (used %v)", *req.Total, computed, order.Total)
		}
	}

	if err := s.dispatcher.Dispatch(ctx, &order); err != nil {
		s.log.Warnf(ctx, "order accepted but not queued for delivery: %v", err)
	}

	metrics.OrdersIntake.WithLabelValues("accepted").Inc()
	s.log.Infof(ctx, "order accepted items=%d total=%v", len(order.Items), order.Total)

	return &domain.OrderReceipt{
		Success:   true,
		OrderID:   order.OrderID,
		Message:   "Order created successfully",
		Timestamp: order.Timestamp,
	}, nil
}

// nextID — время приёма в миллисекундах, строго возрастающее в рамках процесса.
func (s *OrderService) nextID(now time.Time) int64 {
	candidate := now.UnixMilli()
	for {
		last := s.lastID.Load()
		id := candidate
		if id <= last {
			id = last + 1
		}
		if s.lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}
