package httpx

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderProcessTime — время обработки запроса в миллисекундах.
const HeaderProcessTime = "X-Process-Time"

// SecurityConfig — параметры заголовков безопасности.
type SecurityConfig struct {
	// FrameAncestors — кому разрешено встраивать страницы (Telegram открывает Mini App во фрейме).
	FrameAncestors []string
	// HSTS — Strict-Transport-Security; включается в release-режиме.
	HSTS bool
}

// DefaultFrameAncestors — собственный origin и веб-клиент Telegram.
var DefaultFrameAncestors = []string{"'self'", "https://web.telegram.org"}

// SecurityHeaders — заголовки безопасности и X-Process-Time на каждый ответ.
// X-Frame-Options не отправляется: встраивание регулирует CSP frame-ancestors.
func SecurityHeaders(cfg SecurityConfig) gin.HandlerFunc {
	ancestors := cfg.FrameAncestors
	if len(ancestors) == 0 {
		ancestors = DefaultFrameAncestors
	}
	csp := "frame-ancestors " + strings.Join(ancestors, " ")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", csp)
		if cfg.HSTS {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		tw := &timingWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Writer = tw
		c.Next()

		// ответ без тела: заголовки ещё не отправлены
		tw.stamp()
	}
}

// timingWriter — проставляет X-Process-Time перед отправкой заголовков.
type timingWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timingWriter) stamp() {
	if w.stamped || w.ResponseWriter.Written() {
		return
	}
	w.stamped = true
	w.Header().Set(HeaderProcessTime, formatMillis(time.Since(w.start)))
}

func (w *timingWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timingWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timingWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// formatMillis — "12.345".
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
