package app

import (
	"context"
	"runtime"
	"time"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const pingTimeout = 500 * time.Millisecond

var _ ports.Diagnostics = (*Diagnostics)(nil)

// queueStats — заполненность очереди доставки.
type queueStats interface {
	Depth() int
	Capacity() int
}

// Diagnostics — /health и /api/debug. Секреты (токен, ключи) в ответы не попадают.
type Diagnostics struct {
	service      string
	started      time.Time
	store        ports.KVStore
	notifier     ports.Notifier
	kafkaEnabled bool
	queue        queueStats
	limiter      *httpx.RateLimiter // nil — лимиты выключены
}

// NewDiagnostics — конструктор Diagnostics.
func NewDiagnostics(service string, store ports.KVStore, notifier ports.Notifier, kafkaEnabled bool,
	queue queueStats, limiter *httpx.RateLimiter) *Diagnostics {
	return &Diagnostics{
		service:      service,
		started:      time.Now(),
		store:        store,
		notifier:     notifier,
		kafkaEnabled: kafkaEnabled,
		queue:        queue,
		limiter:      limiter,
	}
}

// Health — процесс жив всегда, когда отвечает; состояние зависимостей справочное.
func (d *Diagnostics) Health(ctx context.Context) domain.HealthReport {
	deps := map[string]string{
		"telegram": "not_configured",
		"kafka":    "disabled",
	}
	if d.notifier != nil && d.notifier.Configured() {
		deps["telegram"] = "configured"
	}
	if d.kafkaEnabled {
		deps["kafka"] = "enabled"
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.store.Ping(pingCtx); err != nil {
		deps["cache"] = d.store.Name() + ": unavailable"
	} else {
		deps["cache"] = d.store.Name() + ": ok"
	}

	return domain.HealthReport{Status: "healthy", Service: d.service, Dependencies: deps}
}

// Snapshot — диагностический снимок процесса.
func (d *Diagnostics) Snapshot(context.Context) domain.DebugSnapshot {
	limits := []domain.RateLimitInfo{}
	if d.limiter != nil {
		limits = d.limiter.Limits()
	}
	snap := domain.DebugSnapshot{
		Service:      d.service,
		GoVersion:    runtime.Version(),
		Uptime:       time.Since(d.started).Round(time.Second).String(),
		Goroutines:   runtime.NumGoroutine(),
		GinMode:      gin.Mode(),
		CacheBackend: d.store.Name(),
		KafkaEnabled: d.kafkaEnabled,
		RateLimits:   limits,
	}
	if d.notifier != nil {
		snap.TelegramConfigured = d.notifier.Configured()
	}
	if d.queue != nil {
		snap.QueueDepth = d.queue.Depth()
		snap.QueueCapacity = d.queue.Capacity()
	}
	return snap
}
