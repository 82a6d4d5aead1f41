package handler

import (
	"errors"
	"net/http"
	"strings"

	"eventify/internal/model"
	"eventify/internal/service"
	apperrors "eventify/pkg/app_errors"
	"eventify/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
	auth    gin.HandlerFunc
}

func NewAuthHandler(service service.AuthService, auth gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{service: service, auth: auth}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
		router.POST("logout", h.auth, h.Logout)
		router.GET("me", h.auth, h.Me)
		router.PUT("profile", h.auth, h.UpdateProfile)
	}
}

// RegisterRequest 註冊請求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 個人資料更新請求
type UpdateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=50"`
	Avatar *string `json:"avatar"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.service.Logout(c, token); err != nil {
		h.handleError(c, err, "Logout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	user, err := h.service.GetUser(c, userID)
	if err != nil {
		h.handleError(c, err, "Me")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req UpdateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Avatar == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of name or avatar is required"})
		return
	}

	user, err := h.service.UpdateProfile(c, userID, model.UpdateUserParams{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.handleError(c, err, "UpdateProfile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Email taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
