package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalmanuRidwan/Trivia-API/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "0123456789abcdef0123456789abcdef"

// newTestRouter создает роутер с middleware и маршрутом, возвращающим 200
func newTestRouter(method, path string, handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "id": c.GetUint("questionID")})
	})
	router.Handle(method, path, handlers...)
	return router
}

func perform(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Ответ должен быть JSON: %s", w.Body.String())
	return body
}

func TestExtractUintParam(t *testing.T) {
	router := newTestRouter(http.MethodDelete, "/questions/:id", ExtractUintParam("id", "questionID"))

	testCases := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"валидный id", "/questions/12", http.StatusOK},
		{"нечисловой id", "/questions/abc", http.StatusBadRequest},
		{"отрицательный id", "/questions/-1", http.StatusBadRequest},
		{"переполнение", "/questions/99999999999", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(router, http.MethodDelete, tc.path, nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			body := decode(t, w)
			if tc.wantStatus == http.StatusBadRequest {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "bad request", body["message"])
			} else {
				assert.Equal(t, float64(12), body["id"])
			}
		})
	}
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	router := newTestRouter(http.MethodGet, "/ping", RequestID())

	w := perform(router, http.MethodGet, "/ping", nil)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "Должен генерироваться UUID")
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	router := newTestRouter(http.MethodGet, "/ping", RequestID())

	w := perform(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "req-42"})

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRequireAdmin_Disabled(t *testing.T) {
	// Без сервиса токенов проверка отключена
	router := newTestRouter(http.MethodDelete, "/questions/1", NewAuthMiddleware(nil).RequireAdmin())

	w := perform(router, http.MethodDelete, "/questions/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, _ := tokens.Generate("ops", auth.RoleAdmin)
	viewerToken, _ := tokens.Generate("guest", "viewer")

	router := newTestRouter(http.MethodDelete, "/questions/1", RequestID(), NewAuthMiddleware(tokens).RequireAdmin())

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"без заголовка", "", http.StatusUnauthorized},
		{"неверный формат", "Token " + adminToken, http.StatusUnauthorized},
		{"мусорный токен", "Bearer garbage", http.StatusUnauthorized},
		{"не админ", "Bearer " + viewerToken, http.StatusForbidden},
		{"админ", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.header != "" {
				headers["Authorization"] = tc.header
			}

			w := perform(router, http.MethodDelete, "/questions/1", headers)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestRateLimiter_FailOpen(t *testing.T) {
	// Arrange: Redis недоступен
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()
	limiter := NewRateLimiter(client)
	router := newTestRouter(http.MethodPost, "/quizzes", limiter.Limit(RateLimitConfig{
		MaxRequests: 1,
		Window:      time.Minute,
		KeyPrefix:   "test:rl",
	}))

	// Act & Assert: запросы пропускаются, несмотря на лимит 1
	for i := 0; i < 3; i++ {
		w := perform(router, http.MethodPost, "/quizzes", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	// При MaxRequests=0 Redis не используется вовсе
	limiter := NewRateLimiter(nil)
	router := newTestRouter(http.MethodPost, "/quizzes", limiter.Limit(RateLimitConfig{MaxRequests: 0}))

	w := perform(router, http.MethodPost, "/quizzes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
