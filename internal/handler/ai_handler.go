package handler

import (
	"errors"
	"net/http"

	"eventify/internal/service"
	apperrors "eventify/pkg/app_errors"
	"eventify/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	service service.AIService
	auth    gin.HandlerFunc
}

func NewAIHandler(service service.AIService, auth gin.HandlerFunc) *AIHandler {
	return &AIHandler{service: service, auth: auth}
}

func (h *AIHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/ai")
	{
		router.POST("generate-description", h.auth, h.GenerateDescription)
		router.POST("enhance-description", h.auth, h.EnhanceDescription)
	}
}

// GenerateDescriptionRequest 產生文案請求
type GenerateDescriptionRequest struct {
	Title          string `json:"title" binding:"required"`
	Category       string `json:"category"`
	Location       string `json:"location"`
	AdditionalInfo string `json:"additional_info"`
}

// EnhanceDescriptionRequest 潤飾文案請求
type EnhanceDescriptionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description" binding:"required"`
}

func (h *AIHandler) GenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	description, err := h.service.GenerateDescription(c, req.Title, req.Category, req.Location, req.AdditionalInfo)
	if err != nil {
		h.handleError(c, err, "GenerateDescription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}

func (h *AIHandler) EnhanceDescription(c *gin.Context) {
	var req EnhanceDescriptionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	description, err := h.service.EnhanceDescription(c, req.Title, req.Description)
	if err != nil {
		h.handleError(c, err, "EnhanceDescription")
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}

func (h *AIHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAIServiceUnavailable):
		log.Warn("AI service not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service not configured"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate description"})
	}
}
