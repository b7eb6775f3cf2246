package httpx

import (
	"io"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/gin-gonic/gin"
)

// Recovery — паника в хендлере превращается в JSON 500 вместо обрыва соединения.
func Recovery(log ports.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Errorf(c.Request.Context(), "panic recovered method=%s path=%s: %v",
			c.Request.Method, c.Request.URL.Path, recovered)
		AbortInternal(c)
	})
}
