package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit — отклоняет тело больше maxBytes до чтения (413) по Content-Length
// и ограничивает чтение для запросов без него; хендлер получает *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			AbortWithError(c, http.StatusRequestEntityTooLarge, MsgTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
