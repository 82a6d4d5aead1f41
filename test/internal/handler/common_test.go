package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"eventify/internal/handler"
	serviceMocks "eventify/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	InvalidJSON = `{"invalid": json}`

	testToken = "test-session-token"
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// create authenticated HTTP request with JSON body
func createAuthedJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req := createJSONHTTPRequest(method, url, data)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// authMiddleware 回傳一個會把 testToken 解析成 userID 的 auth middleware
func authMiddleware(t *testing.T, userID uuid.UUID) gin.HandlerFunc {
	mockAuth := serviceMocks.NewMockAuthService(t)
	mockAuth.EXPECT().ResolveToken(mock.Anything, testToken).Return(userID, nil).Maybe()
	return handler.AuthRequired(mockAuth)
}
