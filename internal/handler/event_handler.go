package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"eventify/internal/model"
	"eventify/internal/service"
	"eventify/internal/storage"
	apperrors "eventify/pkg/app_errors"
	"eventify/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	service    service.EventService
	imageStore storage.ImageStore
	auth       gin.HandlerFunc
}

func NewEventHandler(service service.EventService, imageStore storage.ImageStore, auth gin.HandlerFunc) *EventHandler {
	return &EventHandler{service: service, imageStore: imageStore, auth: auth}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:uuid", h.GetByEventID)
		router.POST("events", h.auth, h.Create)
		router.PUT("events/:uuid", h.auth, h.UpdateByEventID)
		router.PUT("events/:uuid/image", h.auth, h.UploadImage)
		router.DELETE("events/:uuid", h.auth, h.DeleteByEventID)
		router.GET("events/user/created", h.auth, h.ListCreated)
		router.GET("events/user/attending", h.auth, h.ListAttending)
	}
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=100"`
	Description string    `json:"description" binding:"required,max=2000"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	Location    string    `json:"location" binding:"required,max=200"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	Category    string    `json:"category"`
}

// UpdateEventRequest 更新活動請求，nil 欄位表示不變
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=100"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
	Category    *string    `json:"category"`
}

// ListEventsQuery 列表查詢參數
type ListEventsQuery struct {
	Category string `form:"category"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Upcoming string `form:"upcoming"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	params := model.ListEventsParams{
		Category: model.Category(query.Category),
		Search:   query.Search,
		Sort:     model.EventSort(query.Sort),
		Upcoming: query.Upcoming != "false",
	}
	if query.DateFrom != "" {
		from, err := time.Parse("2006-01-02", query.DateFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from"})
			return
		}
		params.DateFrom = &from
	}
	if query.DateTo != "" {
		to, err := time.Parse("2006-01-02", query.DateTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to"})
			return
		}
		params.DateTo = &to
	}
	if query.Page != "" {
		params.Page, _ = strconv.Atoi(query.Page)
	}
	if query.Limit != "" {
		params.Limit, _ = strconv.Atoi(query.Limit)
	}

	page, err := h.service.List(c, params)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "GetByEventID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Category:    model.Category(req.Category),
		CreatorID:   userID,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateByEventID(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		params.Category = &category
	}

	updated, err := h.service.UpdateByEventID(c, eventID, userID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByEventID")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadImage 上傳活動圖片並更新到活動欄位
func (h *EventHandler) UploadImage(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err, "UploadImage")
		return
	}
	defer file.Close()

	path, err := h.imageStore.Save(c, fileHeader.Filename, file)
	if err != nil {
		h.handleError(c, err, "UploadImage")
		return
	}

	updated, err := h.service.UpdateByEventID(c, eventID, userID, model.UpdateEventParams{Image: &path})
	if err != nil {
		h.handleError(c, err, "UploadImage")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteByEventID(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	eventID, ok := parseEventUUID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByEventID(c, eventID, userID); err != nil {
		h.handleError(c, err, "DeleteByEventID")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) ListCreated(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	events, err := h.service.ListCreatedBy(c, userID)
	if err != nil {
		h.handleError(c, err, "ListCreated")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListAttending(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	events, err := h.service.ListAttendedBy(c, userID)
	if err != nil {
		h.handleError(c, err, "ListAttending")
		return
	}
	c.JSON(http.StatusOK, events)
}

func parseEventUUID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return uuid.Nil, false
	}
	return eventID, true
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrNotEventOwner):
		log.Warn("Not the event owner")
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this event"})
	case errors.Is(err, apperrors.ErrCapacityBelowAttendees):
		log.Warn("Capacity below attendee count")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot reduce capacity below current attendee count"})
	case errors.Is(err, apperrors.ErrVersionConflict):
		log.Warn("Version conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "Event was modified by another user. Please refresh and try again."})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
