package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/internal/middleware"
	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// respondError переводит ошибку сервиса в код ответа.
// ErrNotFound всегда дает 404; остальные ошибки - код fallback, который
// задаёт сам маршрут. Исходная ошибка только логируется.
func respondError(c *gin.Context, err error, fallback int) {
	status := fallback
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	}

	if status != http.StatusNotFound {
		log.Printf("ERROR: %s %s (request_id=%s) -> %d: %v",
			c.Request.Method, c.FullPath(), c.GetString(middleware.RequestIDKey), status, err)
	}
	helper.AbortWithError(c, status)
}
