package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - единый формат ответа об ошибке
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "server error",
}

// StatusMessage возвращает сообщение для кода ответа.
// Детали исходной ошибки клиенту не раскрываются.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "server error"
}

// NewErrorResponse создает тело ответа об ошибке
func NewErrorResponse(status int) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusMessage(status),
	}
}

// AbortWithError прерывает обработку запроса и отдает ошибку в едином формате
func AbortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}
