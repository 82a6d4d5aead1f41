package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/internal/handler"
	serviceMocks "eventify/internal/service/mocks"
	apperrors "eventify/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAITestRouter(t *testing.T, mockService *serviceMocks.MockAIService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	aiHandler := handler.NewAIHandler(mockService, authMiddleware(t, userID))
	aiHandler.RegisterRoutes(router)

	return router
}

func TestGenerateDescription(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAIService(t)
		router := setupAITestRouter(t, mockService, userID)

		mockService.EXPECT().
			GenerateDescription(mock.Anything, "Go Meetup", "meetup", "Taipei", "").
			Return("An exciting meetup for Go developers.", nil).Once()

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/ai/generate-description", handler.GenerateDescriptionRequest{
			Title:    "Go Meetup",
			Category: "meetup",
			Location: "Taipei",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "An exciting meetup for Go developers.")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrAIServiceUnavailable", func(t *testing.T) {
		mockService := serviceMocks.NewMockAIService(t)
		router := setupAITestRouter(t, mockService, userID)

		mockService.EXPECT().
			GenerateDescription(mock.Anything, "Go Meetup", "", "", "").
			Return("", apperrors.ErrAIServiceUnavailable).Once()

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/ai/generate-description", handler.GenerateDescriptionRequest{
			Title: "Go Meetup",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing title", func(t *testing.T) {
		mockService := serviceMocks.NewMockAIService(t)
		router := setupAITestRouter(t, mockService, userID)

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/ai/generate-description", gin.H{"category": "meetup"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEnhanceDescription(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAIService(t)
		router := setupAITestRouter(t, mockService, userID)

		mockService.EXPECT().
			EnhanceDescription(mock.Anything, "Go Meetup", "we talk about go").
			Return("Join us as we talk about Go.", nil).Once()

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/ai/enhance-description", handler.EnhanceDescriptionRequest{
			Title:       "Go Meetup",
			Description: "we talk about go",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
