package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SalmanuRidwan/Trivia-API/internal/domain/entity"
	"github.com/SalmanuRidwan/Trivia-API/internal/middleware"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// Моки сервисов
// ============================================================================

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page service.Page) (*service.QuestionPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuestionPage), args.Error(1)
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string) ([]entity.Question, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionService) ListByCategory(ctx context.Context, categoryID uint) (*service.CategoryQuestions, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CategoryQuestions), args.Error(1)
}

func (m *MockQuestionService) ExportQuestions(ctx context.Context) ([]service.ExportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ExportRow), args.Error(1)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) NextQuestion(ctx context.Context, previous []uint, categoryID uint) (*entity.Question, error) {
	args := m.Called(ctx, previous, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ============================================================================
// Вспомогательные функции
// ============================================================================

type testEnv struct {
	categories *MockCategoryService
	questions  *MockQuestionService
	quiz       *MockQuizService
	db         *MockPinger
	router     *gin.Engine
}

// newTestEnv собирает роутер на моках; auth может быть nil (проверка отключена)
func newTestEnv(auth *middleware.AuthMiddleware) *testEnv {
	env := &testEnv{
		categories: new(MockCategoryService),
		questions:  new(MockQuestionService),
		quiz:       new(MockQuizService),
		db:         new(MockPinger),
	}
	if auth == nil {
		auth = middleware.NewAuthMiddleware(nil)
	}
	env.router = NewRouter(RouterDeps{
		Categories: NewCategoryHandler(env.categories, env.questions),
		Questions:  NewQuestionHandler(env.questions),
		Quizzes:    NewQuizHandler(env.quiz),
		Health:     NewHealthHandler(env.db, nil),
		Auth:       auth,
	})
	return env
}

func (e *testEnv) assertExpectations(t *testing.T) {
	e.categories.AssertExpectations(t)
	e.questions.AssertExpectations(t)
	e.quiz.AssertExpectations(t)
	e.db.AssertExpectations(t)
}

// perform выполняет запрос; body типа string отправляется как есть
func perform(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

func assertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := parseJSONResponse(t, w)
	require.Equal(t, false, resp["success"])
	require.Equal(t, float64(status), resp["error"])
	require.Equal(t, message, resp["message"])
}

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}
