// Пакет dispatch — фоновая доставка принятых заказов получателям (Telegram, Kafka).
// Ответ клиенту не зависит от результата доставки: очередь не возвращает его вызывающей стороне.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrQueueFull — очередь заполнена, заказ не будет доставлен.
	ErrQueueFull = errors.New("dispatch queue is full")
	// ErrClosed — очередь остановлена.
	ErrClosed = errors.New("dispatch queue is closed")
)

var _ ports.OrderDispatcher = (*Queue)(nil)

// Config — размер пула и буфера.
type Config struct {
	Workers   int
	QueueSize int
}

type job struct {
	ctx   context.Context
	order *domain.Order
}

// Queue — ограниченная очередь с пулом воркеров. Каждый воркер передаёт заказ
// всем получателям по очереди; ошибка одного получателя не мешает остальным.
type Queue struct {
	jobs   chan job
	sinks  []ports.OrderSink
	log    ports.Logger
	tracer trace.Tracer

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New — создаёт очередь и сразу запускает воркеры.
func New(cfg Config, log ports.Logger, sinks ...ports.OrderSink) *Queue {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}

	q := &Queue{
		jobs:   make(chan job, cfg.QueueSize),
		sinks:  sinks,
		log:    log,
		tracer: otel.Tracer("tg_store/dispatch"),
	}
	q.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go q.worker()
	}
	return q
}

// Dispatch — неблокирующая постановка в очередь. Контекст запроса отвязывается от отмены,
// но сохраняет request_id/order_id и trace для логов доставки.
func (q *Queue) Dispatch(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("dispatch: nil order")
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.DispatchDropped.Inc()
		return ErrClosed
	}

	select {
	case q.jobs <- job{ctx: context.WithoutCancel(ctx), order: order}:
		metrics.DispatchQueueDepth.Set(float64(len(q.jobs)))
		return nil
	default:
		metrics.DispatchDropped.Inc()
		return ErrQueueFull
	}
}

// Shutdown — закрывает приём и ждёт, пока воркеры доставят всё из буфера,
// либо пока не истечёт ctx.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatch drain: %w (pending=%d)", ctx.Err(), len(q.jobs))
	}
}

// Depth — заказов в буфере.
func (q *Queue) Depth() int { return len(q.jobs) }

// Capacity — размер буфера.
func (q *Queue) Capacity() int { return cap(q.jobs) }

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		metrics.DispatchQueueDepth.Set(float64(len(q.jobs)))
		q.deliver(j)
	}
}

func (q *Queue) deliver(j job) {
	ctx, span := q.tracer.Start(j.ctx, "dispatch.order",
		trace.WithAttributes(attribute.Int64("order.id", j.order.OrderID)))
	defer span.End()

	for _, sink := range q.sinks {
		if err := q.deliverTo(ctx, sink, j.order); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, sink.Name())
			metrics.SinkDeliveries.WithLabelValues(sink.Name(), "error").Inc()
			q.log.Warnf(ctx, "order delivery to %s failed: %v", sink.Name(), err)
			continue
		}
		metrics.SinkDeliveries.WithLabelValues(sink.Name(), "ok").Inc()
		q.log.Infof(ctx, "order delivered to %s", sink.Name())
	}
}

// deliverTo — вызов получателя; паника превращается в ошибку, воркер продолжает работу.
func (q *Queue) deliverTo(ctx context.Context, sink ports.OrderSink, order *domain.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Errorf(ctx, "panic in %s sink: %v", sink.Name(), r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return sink.Deliver(ctx, order)
}
