package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/pkg/auth"
)

// AuthMiddleware защищает административные маршруты
type AuthMiddleware struct {
	tokenService *auth.TokenService
}

// NewAuthMiddleware создает middleware. Если tokenService равен nil,
// проверка отключена и все запросы пропускаются.
func NewAuthMiddleware(tokenService *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// RequireAdmin требует заголовок "Authorization: Bearer {token}" с ролью admin
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.tokenService == nil {
			c.Next()
			return
		}

		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			helper.AbortWithError(c, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokenService.Parse(token)
		if err != nil {
			log.Printf("[AuthMiddleware] Отклонен токен (request_id=%s): %v", c.GetString(RequestIDKey), err)
			helper.AbortWithError(c, http.StatusUnauthorized)
			return
		}

		if claims.Role != auth.RoleAdmin {
			helper.AbortWithError(c, http.StatusForbidden)
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

// bearerToken извлекает токен из заголовка формата Bearer {token}
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header is required")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("authorization header format must be Bearer {token}")
	}
	return parts[1], nil
}
