package domain

// HealthReport — ответ /health: живость процесса и состояние зависимостей.
type HealthReport struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies"`
}

// RateLimitInfo — лимит маршрута в человекочитаемом виде.
type RateLimitInfo struct {
	Route string `json:"route"`
	Limit string `json:"limit"`
}

// DebugSnapshot — диагностический снимок для /api/debug. Без секретов.
type DebugSnapshot struct {
	Service            string          `json:"service"`
	GoVersion          string          `json:"go_version"`
	Uptime             string          `json:"uptime"`
	Goroutines         int             `json:"goroutines"`
	GinMode            string          `json:"gin_mode"`
	CacheBackend       string          `json:"cache_backend"`
	TelegramConfigured bool            `json:"telegram_configured"`
	KafkaEnabled       bool            `json:"kafka_enabled"`
	QueueDepth         int             `json:"queue_depth"`
	QueueCapacity      int             `json:"queue_capacity"`
	RateLimits         []RateLimitInfo `json:"rate_limits"`
}
