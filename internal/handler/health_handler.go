package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
)

// DBPinger проверяет доступность базы данных (реализуется *sql.DB)
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger проверяет доступность кеша (реализуется redis.CacheRepo)
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse - ответ проверки состояния
type HealthResponse struct {
	Success  bool   `json:"success"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// HealthHandler отвечает на проверки состояния сервиса
type HealthHandler struct {
	db    DBPinger
	cache CachePinger
}

// NewHealthHandler создает обработчик. cache может быть nil, если Redis отключен.
func NewHealthHandler(db DBPinger, cache CachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health проверяет PostgreSQL и, если включен, Redis
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		log.Printf("[HealthHandler] База данных недоступна: %v", err)
		helper.AbortWithError(c, http.StatusInternalServerError)
		return
	}

	resp := HealthResponse{Success: true, Database: "ok", Redis: "disabled"}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			log.Printf("[HealthHandler] Redis недоступен: %v", err)
			helper.AbortWithError(c, http.StatusInternalServerError)
			return
		}
		resp.Redis = "ok"
	}

	c.JSON(http.StatusOK, resp)
}
