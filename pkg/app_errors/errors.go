package apperrors

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")

	// RSVP 拒絕原因：由 RSVPService 的診斷查詢分類
	ErrAlreadyRegistered = errors.New("user already registered to event")
	ErrEventAtCapacity   = errors.New("event is at full capacity")
	ErrNotRegistered     = errors.New("user not registered to event")
	// 原子嘗試沒有命中，診斷讀取也無法重現原因，可安全重試
	ErrRSVPConflict = errors.New("rsvp conflict, please retry")

	// 活動編輯
	ErrCapacityBelowAttendees = errors.New("capacity below current attendee count")
	ErrVersionConflict        = errors.New("event was modified by another user")
	ErrNotEventOwner          = errors.New("not the event owner")

	// 認證
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrAIServiceUnavailable = errors.New("ai service not configured")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
