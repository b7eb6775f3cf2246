package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса.
const DefaultPrefix = "STORE"

// HTTP — HTTP-сервер.
type HTTP struct {
	Port              string        `envconfig:"PORT" default:"5000"`
	GinMode           string        `envconfig:"GIN_MODE" default:"debug"` // debug|release|test
	ReadTimeout       time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	IdleTimeout       time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	GracefulTimeout   time.Duration `envconfig:"GRACEFUL_TIMEOUT" default:"10s"`
	MaxBodyBytes      int64         `envconfig:"MAX_BODY_BYTES" default:"65536"`
	CORSOrigins       []string      `envconfig:"CORS_ORIGINS" default:"*"`
}

// Addr — адрес прослушивания.
func (h HTTP) Addr() string {
	if strings.Contains(h.Port, ":") {
		return h.Port
	}
	return ":" + h.Port
}

// Telegram — Bot API для уведомлений о заказах.
type Telegram struct {
	BotToken       string          `envconfig:"BOT_TOKEN"`
	ChatID         string          `envconfig:"CHAT_ID"`
	APIURL         string          `envconfig:"API_URL" default:"https://api.telegram.org"`
	ConnectTimeout time.Duration   `envconfig:"CONNECT_TIMEOUT" default:"3s"`
	ReadTimeout    time.Duration   `envconfig:"READ_TIMEOUT" default:"10s"`
	MaxAttempts    int             `envconfig:"MAX_ATTEMPTS" default:"3"`
	StatusBackoff  []time.Duration `envconfig:"STATUS_BACKOFF" default:"1s,2s"`
	NetworkBackoff time.Duration   `envconfig:"NETWORK_BACKOFF" default:"2s"`
}

// Cache — хранилище кэша ответов и счётчиков лимитов.
// Пустой URL — in-memory хранилище процесса.
type Cache struct {
	URL            string        `envconfig:"URL"`
	Capacity       int           `envconfig:"CAPACITY" default:"0"` // 0 — без ограничения
	ProductsTTL    time.Duration `envconfig:"PRODUCTS_TTL" default:"1h"`
	SuggestionsTTL time.Duration `envconfig:"SUGGESTIONS_TTL" default:"24h"`
	PaymentTTL     time.Duration `envconfig:"PAYMENT_TTL" default:"5m"`
}

// RateLimit — потолки запросов; формат "N/unit" или "N per unit".
type RateLimit struct {
	Enabled     bool       `envconfig:"ENABLED" default:"true"`
	Default     httpx.Rate `envconfig:"DEFAULT" default:"100/minute"`
	Order       httpx.Rate `envconfig:"ORDER" default:"10/minute"`
	Payment     httpx.Rate `envconfig:"PAYMENT" default:"10/minute"`
	Suggestions httpx.Rate `envconfig:"SUGGESTIONS" default:"30/minute"`
}

// Dispatch — очередь доставки заказов.
type Dispatch struct {
	Workers   int `envconfig:"WORKERS" default:"4"`
	QueueSize int `envconfig:"QUEUE_SIZE" default:"100"`
}

// Kafka — публикация событий заказов; пустой BROKERS отключает.
type Kafka struct {
	Brokers      []string      `envconfig:"BROKERS"`
	Topic        string        `envconfig:"TOPIC" default:"orders"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
}

// Order — приём заказов.
type Order struct {
	Timezone       string `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	RecomputeTotal bool   `envconfig:"RECOMPUTE_TOTAL" default:"false"`
}

// Location — часовой пояс timestamp заказа.
func (o Order) Location() (*time.Location, error) {
	if o.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("order timezone %q: %w", o.Timezone, err)
	}
	return loc, nil
}

// Payment — платёжные способы.
type Payment struct {
	YooKassaShopID    string  `envconfig:"YOOKASSA_SHOP_ID"`
	YooKassaSecretKey string  `envconfig:"YOOKASSA_SECRET_KEY"`
	CryptoDiscount    float64 `envconfig:"CRYPTO_DISCOUNT" default:"200"`
}

// Catalog — файл каталога; пустой путь — встроенный каталог.
type Catalog struct {
	Path string `envconfig:"PATH"`
}

// Tracing — OpenTelemetry.
type Tracing struct {
	Enabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"tg-store"`
	Endpoint    string  `envconfig:"OTEL_ENDPOINT" default:"jaeger:4318"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `envconfig:"IS_PROD" default:"false"`
}

// Config — полная конфигурация сервиса.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"Morelufs Telegram API"`

	HTTP      HTTP
	Telegram  Telegram
	Cache     Cache
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Dispatch  Dispatch
	Kafka     Kafka
	Order     Order
	Payment   Payment
	Catalog   Catalog
	Tracing   Tracing
	Logger    Logger
}

// Load — конфигурация с префиксом STORE.
func Load() (*Config, error) {
	return LoadWithPrefix(DefaultPrefix)
}

// LoadWithPrefix — конфигурация из окружения с заданным префиксом.
// Для совместимости с окружением витрины читаются и переменные без префикса
// (PORT, TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID, REDIS_URL, YOOKASSA_*),
// если префиксная переменная не задана.
func LoadWithPrefix(prefix string) (*Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, err
	}
	applyFallbacks(prefix, &c)
	return &c, nil
}

type fallback struct {
	key    string // переменная с префиксом, без самого префикса
	plain  string // переменная без префикса
	target *string
}

func applyFallbacks(prefix string, c *Config) {
	for _, f := range []fallback{
		{"HTTP_PORT", "PORT", &c.HTTP.Port},
		{"TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN", &c.Telegram.BotToken},
		{"TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_ID", &c.Telegram.ChatID},
		{"CACHE_URL", "REDIS_URL", &c.Cache.URL},
		{"PAYMENT_YOOKASSA_SHOP_ID", "YOOKASSA_SHOP_ID", &c.Payment.YooKassaShopID},
		{"PAYMENT_YOOKASSA_SECRET_KEY", "YOOKASSA_SECRET_KEY", &c.Payment.YooKassaSecretKey},
	} {
		if _, set := os.LookupEnv(prefix + "_" + f.key); set {
			continue
		}
		if v, ok := os.LookupEnv(f.plain); ok && v != "" {
			*f.target = v
		}
	}
}
