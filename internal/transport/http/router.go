package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Маршруты API; по ним же настраиваются лимиты.
const (
	RouteHealth      = "/health"
	RouteMetrics     = "/metrics"
	RouteDebug       = "/api/debug"
	RouteProducts    = "/api/products"
	RouteOrder       = "/api/order"
	RoutePayment     = "/api/create-payment"
	RouteSuggestions = "/api/address-suggestions"
)

// RouterConfig — параметры HTTP-слоя.
type RouterConfig struct {
	ServiceName  string // имя для otelgin; пустое — без трейсинга
	MaxBodyBytes int64
	CORSOrigins  []string
	HSTS         bool

	// Limiter — nil отключает лимиты.
	Limiter *httpx.RateLimiter

	ProductsTTL    time.Duration
	SuggestionsTTL time.Duration
	PaymentTTL     time.Duration
}

// NewRouter — gin.Engine с цепочкой middleware:
// recovery → otel → request id → заголовки безопасности → access-лог → CORS → лимиты,
// далее на маршруте: ограничение тела → кэш ответа → хендлер.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(httpx.Recovery(h.log))
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.SecurityHeaders(httpx.SecurityConfig{HSTS: cfg.HSTS}))
	r.Use(httpx.RequestLogger(h.log))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	if cfg.Limiter != nil {
		r.Use(cfg.Limiter.Middleware())
	}

	r.GET(RouteMetrics, gin.WrapH(promhttp.Handler()))
	r.GET(RouteHealth, h.health)
	r.GET(RouteDebug, h.debug)

	bodyLimit := httpx.BodyLimit(cfg.MaxBodyBytes)
	if h.store != nil {
		r.GET(RouteProducts, httpx.ResponseCache(h.store, h.log, cfg.ProductsTTL), h.listProducts)
		r.POST(RoutePayment, bodyLimit,
			httpx.ResponseCache(h.store, h.log, cfg.PaymentTTL, httpx.WithBodyKey()), h.createPayment)
		r.POST(RouteSuggestions, bodyLimit,
			httpx.ResponseCache(h.store, h.log, cfg.SuggestionsTTL, httpx.WithBodyKey()), h.addressSuggestions)
	} else {
		r.GET(RouteProducts, h.listProducts)
		r.POST(RoutePayment, bodyLimit, h.createPayment)
		r.POST(RouteSuggestions, bodyLimit, h.addressSuggestions)
	}
	r.POST(RouteOrder, bodyLimit, h.createOrder)

	r.NoRoute(func(c *gin.Context) {
		httpx.AbortWithError(c, http.StatusNotFound, httpx.MsgNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		if c.Writer.Header().Get("Allow") == "" {
			if allow := allowedMethods(r, c.Request.URL.Path); allow != "" {
				c.Header("Allow", allow)
			}
		}
		httpx.AbortWithError(c, http.StatusMethodNotAllowed, httpx.MsgMethodNotAllow)
	})

	return r
}

// allowedMethods — методы, зарегистрированные для пути (маршруты API статические).
func allowedMethods(r *gin.Engine, path string) string {
	var methods []string
	for _, ri := range r.Routes() {
		if ri.Path == path {
			methods = append(methods, ri.Method)
		}
	}
	return strings.Join(methods, ", ")
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", httpx.HeaderRequestID},
		ExposeHeaders: []string{httpx.HeaderRequestID, httpx.HeaderCache, httpx.HeaderProcessTime, httpx.HeaderRateLimit, httpx.HeaderRateRemaining, httpx.HeaderRetryAfter},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
