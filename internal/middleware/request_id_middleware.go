package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader - заголовок, в котором передаётся идентификатор запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey - ключ идентификатора запроса в контексте Gin
	RequestIDKey = "requestID"

	maxRequestIDLength = 128
)

// RequestID пробрасывает X-Request-ID клиента или генерирует новый UUID,
// сохраняет его в контексте и возвращает в заголовке ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса или пустую строку
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
