package httpx

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Заголовки лимитов.
const (
	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter    = "Retry-After"
)

// RateLimitConfig — лимиты по маршрутам.
// Лимит маршрута заменяет общий, а не складывается с ним.
type RateLimitConfig struct {
	Default Rate
	Routes  map[string]Rate // ключ — шаблон маршрута gin (c.FullPath())
	Exempt  []string        // маршруты без лимитов
}

// RateLimiter — счётчики фиксированного окна по паре (маршрут, IP клиента).
// Атомарность инкремента обеспечивает хранилище, в хендлере блокировок нет.
type RateLimiter struct {
	store  ports.KVStore
	log    ports.Logger
	def    Rate
	routes map[string]Rate
	exempt map[string]struct{}
}

// NewRateLimiter — конструктор RateLimiter.
func NewRateLimiter(store ports.KVStore, log ports.Logger, cfg RateLimitConfig) *RateLimiter {
	l := &RateLimiter{
		store:  store,
		log:    log,
		def:    cfg.Default,
		routes: make(map[string]Rate, len(cfg.Routes)),
		exempt: make(map[string]struct{}, len(cfg.Exempt)),
	}
	for route, r := range cfg.Routes {
		l.routes[route] = r
	}
	for _, route := range cfg.Exempt {
		l.exempt[route] = struct{}{}
	}
	return l
}

// RateFor — лимит маршрута; ok=false, если маршрут не ограничен.
func (l *RateLimiter) RateFor(route string) (Rate, bool) {
	if _, skip := l.exempt[route]; skip {
		return Rate{}, false
	}
	if r, found := l.routes[route]; found && !r.IsZero() {
		return r, true
	}
	if l.def.IsZero() {
		return Rate{}, false
	}
	return l.def, true
}

// Limits — таблица лимитов для /api/debug, отсортирована по маршруту.
func (l *RateLimiter) Limits() []domain.RateLimitInfo {
	out := make([]domain.RateLimitInfo, 0, len(l.routes)+len(l.exempt)+1)
	if !l.def.IsZero() {
		out = append(out, domain.RateLimitInfo{Route: "default", Limit: l.def.String()})
	}
	for route, r := range l.routes {
		out = append(out, domain.RateLimitInfo{Route: route, Limit: r.String()})
	}
	for route := range l.exempt {
		out = append(out, domain.RateLimitInfo{Route: route, Limit: "exempt"})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

// Middleware — 429 сверх лимита. Ошибка хранилища пропускает запрос (fail open).
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "noroute"
		}
		rate, limited := l.RateFor(route)
		if !limited {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		count, ttl, err := l.store.Incr(ctx, rateKey(route, c.ClientIP()), rate.Window)
		if err != nil {
			l.log.Warnf(ctx, "rate limiter store %s unavailable, request allowed: %v", l.store.Name(), err)
			c.Next()
			return
		}

		remaining := int64(rate.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header(HeaderRateLimit, strconv.Itoa(rate.Limit))
		c.Header(HeaderRateRemaining, strconv.FormatInt(remaining, 10))

		if count > int64(rate.Limit) {
			metrics.RateLimitRejections.WithLabelValues(route).Inc()
			c.Header(HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(ttl, rate.Window)))
			l.log.Warnf(ctx, "rate limit exceeded route=%s ip=%s limit=%s", route, c.ClientIP(), rate)
			AbortWithError(c, http.StatusTooManyRequests, MsgTooManyRequests)
			return
		}
		c.Next()
	}
}

func rateKey(route, client string) string {
	return "rl:" + route + ":" + client
}

// retryAfterSeconds — остаток окна вверх до целых секунд, не меньше 1.
func retryAfterSeconds(ttl, window time.Duration) int {
	if ttl <= 0 {
		ttl = window
	}
	secs := int(math.Ceil(ttl.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
