package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader - заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey - ключ идентификатора запроса в контексте Gin
	RequestIDKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID присваивает каждому запросу идентификатор: входящий X-Request-ID или новый UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
