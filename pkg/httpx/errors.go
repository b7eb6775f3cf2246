package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Сообщения об ошибках, общие для middleware и хендлеров.
const (
	MsgInternal        = "Internal server error"
	MsgTooManyRequests = "Too many requests. Please try again later."
	MsgTooLarge        = "Request body too large"
	MsgNotFound        = "route not found"
	MsgMethodNotAllow  = "method not allowed"
)

// ErrorBody — тело ответа об ошибке: {"success":false,"error":msg}.
func ErrorBody(msg string) gin.H {
	return gin.H{"success": false, "error": msg}
}

// AbortWithError — прерывает цепочку JSON-ошибкой.
func AbortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody(msg))
}

// AbortInternal — 500 с общим сообщением; детали остаются в логе.
func AbortInternal(c *gin.Context) {
	AbortWithError(c, http.StatusInternalServerError, MsgInternal)
}
