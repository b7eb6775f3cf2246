package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP-слой: кэш ответов и лимиты.
var (
	HTTPCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_cache_operations_total",
			Help: "Response cache lookups by route and outcome",
		},
		[]string{"route", "op"}, // hit|miss|store|error
	)
	RateLimitRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratelimit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

// Приём заказов и доставка уведомлений.
var (
	OrdersIntake = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_intake_total",
			Help: "Order intake outcomes",
		},
		[]string{"result"}, // accepted|invalid|malformed|too_large
	)
	NotifierAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_attempts_total",
			Help: "Telegram sendMessage attempts by outcome",
		},
		[]string{"result"}, // ok|status|timeout|network|fatal
	)
	NotifierDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_deliveries_total",
			Help: "Telegram notifications by final outcome",
		},
		[]string{"result"}, // delivered|failed|not_configured
	)
	DispatchQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_queue_depth",
			Help: "Orders waiting for delivery to sinks",
		},
	)
	DispatchDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_dropped_total",
			Help: "Orders not queued because the dispatch queue was full or closed",
		},
	)
	SinkDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sink_deliveries_total",
			Help: "Order deliveries per sink and outcome",
		},
		[]string{"sink", "result"}, // ok|error
	)
	OrderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order events written to Kafka",
		},
		[]string{"result"},
	)
)

// Хранилище ключ-значение.
var KVStoreOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kv_store_operations_total",
		Help: "Key-value store operations",
	},
	[]string{"backend", "op", "result"},
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPCacheOps, RateLimitRejections,
			OrdersIntake, NotifierAttempts, NotifierDeliveries,
			DispatchQueueDepth, DispatchDropped, SinkDeliveries, OrderEventsPublished,
			KVStoreOps,
		)
	})
}
