package handler

import (
	"errors"
	"net/http"

	"eventify/internal/model"
	"eventify/internal/service"
	apperrors "eventify/pkg/app_errors"
	"eventify/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RSVPHandler struct {
	service service.RSVPService
	auth    gin.HandlerFunc
}

func NewRSVPHandler(service service.RSVPService, auth gin.HandlerFunc) *RSVPHandler {
	return &RSVPHandler{service: service, auth: auth}
}

func (h *RSVPHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:uuid/rsvp", h.auth, h.Admit)
		router.DELETE("events/:uuid/rsvp", h.auth, h.Revoke)
	}
}

func (h *RSVPHandler) Admit(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}

	event, err := h.service.Admit(c, eventID, userID)
	if err != nil {
		h.handleError(c, err, "Admit")
		return
	}

	c.JSON(http.StatusOK, model.EventResponse{
		Message: "Successfully RSVPed to event",
		Event:   event,
	})
}

func (h *RSVPHandler) Revoke(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}

	event, err := h.service.Revoke(c, eventID, userID)
	if err != nil {
		h.handleError(c, err, "Revoke")
		return
	}

	c.JSON(http.StatusOK, model.EventResponse{
		Message: "RSVP cancelled successfully",
		Event:   event,
	})
}

func (h *RSVPHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		// 容量協議的預期拒絕，不當成失敗記
		log.Warn("Already registered")
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already RSVPed to this event"})
	case errors.Is(err, apperrors.ErrEventAtCapacity):
		log.Warn("Event at capacity")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is at full capacity"})
	case errors.Is(err, apperrors.ErrNotRegistered):
		log.Warn("Not registered")
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not RSVPed to this event"})
	case errors.Is(err, apperrors.ErrRSVPConflict):
		log.Warn("RSVP conflict")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to RSVP. Please try again."})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
