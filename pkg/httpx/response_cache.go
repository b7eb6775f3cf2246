package httpx

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// HeaderCache — отметка попадания в кэш ответов.
const HeaderCache = "X-Cache"

const cacheKeyPrefix = "httpcache:"

// CacheOption — настройка ResponseCache.
type CacheOption func(*cacheRule)

type cacheRule struct {
	ttl     time.Duration
	keyBody bool
}

// WithBodyKey — ключ включает SHA-256 тела; для POST-маршрутов с идемпотентным ответом.
func WithBodyKey() CacheOption {
	return func(r *cacheRule) { r.keyBody = true }
}

// ResponseCache — read-through кэш ответов маршрута.
// Ключ: путь + отсортированная query (+ хэш тела). Попадание отдаётся как есть с X-Cache: HIT,
// промах проходит в хендлер, и успешный ответ сохраняется на ttl с X-Cache: MISS.
// Недоступное хранилище равносильно промаху: ответ клиенту не меняется.
func ResponseCache(store ports.KVStore, log ports.Logger, ttl time.Duration, opts ...CacheOption) gin.HandlerFunc {
	rule := cacheRule{ttl: ttl}
	for _, opt := range opts {
		opt(&rule)
	}

	return func(c *gin.Context) {
		if rule.ttl <= 0 || !rule.cacheable(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		route := c.FullPath()

		key, ok := rule.key(c)
		if !ok {
			c.Next()
			return
		}

		cached, hit, err := store.Get(ctx, key)
		switch {
		case err != nil:
			metrics.HTTPCacheOps.WithLabelValues(route, "error").Inc()
			log.Warnf(ctx, "response cache get failed route=%s: %v", route, err)
		case hit:
			metrics.HTTPCacheOps.WithLabelValues(route, "hit").Inc()
			c.Header(HeaderCache, "HIT")
			c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", cached)
			c.Abort()
			return
		default:
			metrics.HTTPCacheOps.WithLabelValues(route, "miss").Inc()
		}

		c.Header(HeaderCache, "MISS")
		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		if cw.Status() != http.StatusOK || cw.buf.Len() == 0 {
			return
		}
		if err := store.Set(ctx, key, cw.buf.Bytes(), rule.ttl); err != nil {
			metrics.HTTPCacheOps.WithLabelValues(route, "error").Inc()
			log.Warnf(ctx, "response cache set failed route=%s: %v", route, err)
			return
		}
		metrics.HTTPCacheOps.WithLabelValues(route, "store").Inc()
	}
}

func (r cacheRule) cacheable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead:
		return true
	case http.MethodPost:
		return r.keyBody
	default:
		return false
	}
}

// key — ключ кэша. Метод в ключ не входит. Тело читается целиком и возвращается в запрос.
func (r cacheRule) key(c *gin.Context) (string, bool) {
	key := cacheKeyPrefix + c.Request.URL.Path
	if q := CanonicalQuery(c.Request.URL.Query()); q != "" {
		key += "?" + q
	}
	if !r.keyBody {
		return key, true
	}

	var body []byte
	if c.Request.Body != nil {
		orig := c.Request.Body
		var err error
		body, err = io.ReadAll(orig)
		if err != nil {
			// хендлер получит ту же ошибку чтения
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), orig))
			return "", false
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	sum := sha256.Sum256(body)
	return key + "#" + hex.EncodeToString(sum[:]), true
}

// captureWriter — копия тела ответа для сохранения в кэш.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
