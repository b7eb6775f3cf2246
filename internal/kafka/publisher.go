package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	sinkName        = "kafka"
	eventType       = "order.accepted"
	defaultTopic    = "orders"
	defaultWriteTTL = 5 * time.Second
)

// Проверка, что Publisher подходит как получатель заказов.
var _ ports.OrderSink = (*Publisher)(nil)

// messageWriter — минимальный контракт над kafka.Writer, чтобы подменять его моками в тестах.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEvent — событие о принятом заказе.
type OrderEvent struct {
	Type       string        `json:"type"`
	OrderID    int64         `json:"order_id"`
	OccurredAt time.Time     `json:"occurred_at"`
	Order      *domain.Order `json:"order"`
}

// Publisher — пишет события принятых заказов в Kafka.
type Publisher struct {
	writer       messageWriter
	topic        string
	writeTimeout time.Duration
	log          ports.Logger
	tracer       trace.Tracer
	now          func() time.Time
	closeOnce    sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	if cfg.Topic == "" {
		cfg.Topic = defaultTopic
	}
	return newPublisher(cfg.writerConfig(), cfg.Topic, cfg.WriteTimeout, log)
}

func newPublisher(w messageWriter, topic string, writeTimeout time.Duration, log ports.Logger) *Publisher {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTTL
	}
	return &Publisher{
		writer:       w,
		topic:        topic,
		writeTimeout: writeTimeout,
		log:          log,
		tracer:       otel.Tracer("tg_store/kafka"),
		now:          time.Now,
	}
}

func (p *Publisher) Name() string { return sinkName }

// Deliver — публикует событие; ключ сообщения — order_id.
func (p *Publisher) Deliver(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("kafka publish: nil order")
	}

	ctx, span := p.tracer.Start(ctx, "kafka.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", p.topic),
			attribute.Int64("order.id", order.OrderID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(OrderEvent{
		Type:       eventType,
		OrderID:    order.OrderID,
		OccurredAt: p.now().UTC(),
		Order:      order,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marshal")
		metrics.OrderEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("kafka publish: marshal: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(order.OrderID, 10)),
		Value:   payload,
		Headers: messageHeaders(ctx),
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write")
		metrics.OrderEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("kafka publish topic=%s: %w", p.topic, err)
	}

	metrics.OrderEventsPublished.WithLabelValues("ok").Inc()
	p.log.Infof(ctx, "order event published topic=%s", p.topic)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
