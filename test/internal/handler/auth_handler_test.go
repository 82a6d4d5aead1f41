package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/internal/handler"
	"eventify/internal/model"
	serviceMocks "eventify/internal/service/mocks"
	apperrors "eventify/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthTestRouter(mockService *serviceMocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// middleware 與 handler 共用同一個 mock service
	authHandler := handler.NewAuthHandler(mockService, handler.AuthRequired(mockService))
	authHandler.RegisterRoutes(router)

	return router
}

func TestRegister(t *testing.T) {
	registerRequest := handler.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@test.com",
		Password: "secret123",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().Register(mock.Anything, "Alice", "alice@test.com", "secret123").Return(&model.AuthResponse{
			Token: "new-token",
			User:  &model.User{Name: "Alice", Email: "alice@test.com"},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/auth/register", registerRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "new-token")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrEmailTaken", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().Register(mock.Anything, "Alice", "alice@test.com", "secret123").
			Return(nil, apperrors.ErrEmailTaken).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/auth/register", registerRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - short password", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		invalid := registerRequest
		invalid.Password = "123"

		req := createJSONHTTPRequest("POST", "/api/v1/auth/register", invalid)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	loginRequest := handler.LoginRequest{
		Email:    "bob@test.com",
		Password: "secret123",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().Login(mock.Anything, "bob@test.com", "secret123").Return(&model.AuthResponse{
			Token: "session-token",
			User:  &model.User{Name: "Bob", Email: "bob@test.com"},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/auth/login", loginRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "session-token")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInvalidCredentials", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().Login(mock.Anything, "bob@test.com", "secret123").
			Return(nil, apperrors.ErrInvalidCredentials).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/auth/login", loginRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestLogout(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().ResolveToken(mock.Anything, testToken).Return(userID, nil).Once()
		mockService.EXPECT().Logout(mock.Anything, testToken).Return(nil).Once()

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/auth/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid token", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().ResolveToken(mock.Anything, testToken).Return(uuid.Nil, apperrors.ErrInvalidToken).Once()

		req := createAuthedJSONHTTPRequest("POST", "/api/v1/auth/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestMe(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().ResolveToken(mock.Anything, testToken).Return(userID, nil).Once()
		mockService.EXPECT().GetUser(mock.Anything, userID).Return(&model.User{
			UserID: userID,
			Name:   "Carol",
			Email:  "carol@test.com",
		}, nil).Once()

		req := createAuthedJSONHTTPRequest("GET", "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "carol@test.com")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - no token", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()
	newName := "Updated Name"

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().ResolveToken(mock.Anything, testToken).Return(userID, nil).Once()
		mockService.EXPECT().
			UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(params model.UpdateUserParams) bool {
				return params.Name != nil && *params.Name == newName
			})).
			Return(&model.User{UserID: userID, Name: newName}, nil).Once()

		req := createAuthedJSONHTTPRequest("PUT", "/api/v1/auth/profile",
			handler.UpdateProfileRequest{Name: &newName})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Updated Name")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty payload", func(t *testing.T) {
		mockService := serviceMocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService)

		mockService.EXPECT().ResolveToken(mock.Anything, testToken).Return(userID, nil).Once()

		req := createAuthedJSONHTTPRequest("PUT", "/api/v1/auth/profile", gin.H{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
