package httpx

import (
	"time"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware access-лога. /metrics и /health не логируются.
// request_id и trace-метаданные логгер берёт из контекста запроса.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics", "/health":
			return
		case "":
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		logf := log.Infof
		if status >= 500 {
			logf = log.Errorf
		}
		logf(ctx, "request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			status,
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
