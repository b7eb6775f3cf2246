package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/tg_store/config"
	"github.com/Gunvolt24/tg_store/pkg/httpx"
)

// clearPlainEnv — переменные без префикса не должны влиять на тест.
func clearPlainEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "REDIS_URL", "YOOKASSA_SHOP_ID", "YOOKASSA_SECRET_KEY"} {
		t.Setenv(k, "")
	}
}

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	clearPlainEnv(t)

	c, err := cfg.LoadWithPrefix("STORE_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr() != ":5000" {
		t.Fatalf("HTTP.Addr: want :5000, got %q", c.HTTP.Addr())
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.MaxBodyBytes != 65536 || !slices.Equal(c.HTTP.CORSOrigins, []string{"*"}) {
		t.Fatalf("HTTP body limit / CORS wrong: %+v", c.HTTP)
	}

	// Telegram
	if c.Telegram.BotToken != "" || c.Telegram.APIURL != "https://api.telegram.org" {
		t.Fatalf("Telegram defaults wrong: %+v", c.Telegram)
	}
	if c.Telegram.ConnectTimeout != 3*time.Second || c.Telegram.ReadTimeout != 10*time.Second || c.Telegram.MaxAttempts != 3 {
		t.Fatalf("Telegram timeouts wrong: %+v", c.Telegram)
	}
	if !slices.Equal(c.Telegram.StatusBackoff, []time.Duration{time.Second, 2 * time.Second}) || c.Telegram.NetworkBackoff != 2*time.Second {
		t.Fatalf("Telegram backoff wrong: %+v", c.Telegram)
	}

	// Cache
	if c.Cache.URL != "" || c.Cache.Capacity != 0 {
		t.Fatalf("Cache backend defaults wrong: %+v", c.Cache)
	}
	if c.Cache.ProductsTTL != time.Hour || c.Cache.SuggestionsTTL != 24*time.Hour || c.Cache.PaymentTTL != 5*time.Minute {
		t.Fatalf("Cache TTL defaults wrong: %+v", c.Cache)
	}

	// RateLimit
	if !c.RateLimit.Enabled {
		t.Fatalf("RateLimit.Enabled: want true")
	}
	if c.RateLimit.Default != (httpx.Rate{Limit: 100, Window: time.Minute}) ||
		c.RateLimit.Order != (httpx.Rate{Limit: 10, Window: time.Minute}) ||
		c.RateLimit.Payment != (httpx.Rate{Limit: 10, Window: time.Minute}) ||
		c.RateLimit.Suggestions != (httpx.Rate{Limit: 30, Window: time.Minute}) {
		t.Fatalf("RateLimit defaults wrong: %+v", c.RateLimit)
	}

	// Dispatch / Kafka
	if c.Dispatch.Workers != 4 || c.Dispatch.QueueSize != 100 {
		t.Fatalf("Dispatch defaults wrong: %+v", c.Dispatch)
	}
	if len(c.Kafka.Brokers) != 0 || c.Kafka.Topic != "orders" || c.Kafka.WriteTimeout != 5*time.Second {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Order / Payment
	if c.Order.Timezone != "Europe/Moscow" || c.Order.RecomputeTotal {
		t.Fatalf("Order defaults wrong: %+v", c.Order)
	}
	if c.Payment.CryptoDiscount != 200 {
		t.Fatalf("Payment.CryptoDiscount: want 200, got %v", c.Payment.CryptoDiscount)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "tg-store" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	clearPlainEnv(t)
	const p = "STORE_TEST_OVR"

	t.Setenv(p+"_HTTP_PORT", "8081")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_MAX_BODY_BYTES", "1024")
	t.Setenv(p+"_HTTP_CORS_ORIGINS", "https://a.example,https://b.example")

	t.Setenv(p+"_TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv(p+"_TELEGRAM_CHAT_ID", "-100500")
	t.Setenv(p+"_TELEGRAM_STATUS_BACKOFF", "100ms,200ms,400ms")

	t.Setenv(p+"_CACHE_URL", "redis://localhost:6379/0")
	t.Setenv(p+"_CACHE_PRODUCTS_TTL", "30m")

	t.Setenv(p+"_RATE_LIMIT_ENABLED", "false")
	t.Setenv(p+"_RATE_LIMIT_ORDER", "5 per second")

	t.Setenv(p+"_DISPATCH_WORKERS", "8")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_ORDER_TIMEZONE", "UTC")
	t.Setenv(p+"_ORDER_RECOMPUTE_TOTAL", "true")
	t.Setenv(p+"_PAYMENT_CRYPTO_DISCOUNT", "150.5")
	t.Setenv(p+"_CATALOG_PATH", "/etc/store/products.yaml")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr() != ":8081" || c.HTTP.GinMode != "release" || c.HTTP.MaxBodyBytes != 1024 {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !slices.Equal(c.HTTP.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("CORS override wrong: %v", c.HTTP.CORSOrigins)
	}
	if c.Telegram.BotToken != "123:abc" || c.Telegram.ChatID != "-100500" || len(c.Telegram.StatusBackoff) != 3 {
		t.Fatalf("Telegram overrides wrong: %+v", c.Telegram)
	}
	if c.Cache.URL != "redis://localhost:6379/0" || c.Cache.ProductsTTL != 30*time.Minute {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if c.RateLimit.Enabled || c.RateLimit.Order != (httpx.Rate{Limit: 5, Window: time.Second}) {
		t.Fatalf("RateLimit overrides wrong: %+v", c.RateLimit)
	}
	if c.Dispatch.Workers != 8 || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) {
		t.Fatalf("Dispatch/Kafka overrides wrong: %+v %+v", c.Dispatch, c.Kafka)
	}
	loc, err := c.Order.Location()
	if err != nil || loc != time.UTC || !c.Order.RecomputeTotal {
		t.Fatalf("Order overrides wrong: %+v loc=%v err=%v", c.Order, loc, err)
	}
	if c.Payment.CryptoDiscount != 150.5 || c.Catalog.Path != "/etc/store/products.yaml" {
		t.Fatalf("Payment/Catalog overrides wrong: %+v %+v", c.Payment, c.Catalog)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 || !c.Logger.IsProd {
		t.Fatalf("Tracing/Logger overrides wrong: %+v %+v", c.Tracing, c.Logger)
	}
}

// Переменные без префикса подхватываются, если префиксные не заданы.
func TestLoadWithPrefix_PlainFallbacks(t *testing.T) {
	clearPlainEnv(t)
	const p = "STORE_TEST_FALLBACK"

	t.Setenv("PORT", "7000")
	t.Setenv("TELEGRAM_BOT_TOKEN", "plain-token")
	t.Setenv("TELEGRAM_CHAT_ID", "plain-chat")
	t.Setenv("REDIS_URL", "redis://plain:6379")
	t.Setenv(p+"_TELEGRAM_CHAT_ID", "prefixed-chat")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}
	if c.HTTP.Addr() != ":7000" {
		t.Fatalf("PORT fallback: want :7000, got %q", c.HTTP.Addr())
	}
	if c.Telegram.BotToken != "plain-token" || c.Telegram.ChatID != "prefixed-chat" {
		t.Fatalf("prefixed value must win over plain: %+v", c.Telegram)
	}
	if c.Cache.URL != "redis://plain:6379" {
		t.Fatalf("REDIS_URL fallback wrong: %q", c.Cache.URL)
	}
}

// Тоже меняем окружение — но с невалидными значениями.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	tests := []struct{ key, value string }{
		{"_HTTP_READ_TIMEOUT", "not-a-duration"},
		{"_RATE_LIMIT_DEFAULT", "lots/minute"},
		{"_DISPATCH_WORKERS", "four"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			const p = "STORE_TEST_BAD"
			t.Setenv(p+tt.key, tt.value)

			if _, err := cfg.LoadWithPrefix(p); err == nil {
				t.Fatalf("expected error for %s=%q, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestOrder_Location_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := (cfg.Order{Timezone: "Mars/Olympus"}).Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
