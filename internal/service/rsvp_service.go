package service

import (
	"context"
	"errors"

	"eventify/internal/model"
	"eventify/internal/repository"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
)

// RSVPService 是容量控管的核心。
// 每次呼叫只對資料庫發出一次原子條件更新，不持有任何行程內鎖、
// 不重試：述詞本身就完整表達了准入決定，多台 server 同時呼叫也正確。
type RSVPService interface {
	// Admit 報名活動。拒絕原因為 ErrEventNotFound / ErrAlreadyRegistered /
	// ErrEventAtCapacity / ErrRSVPConflict 其中之一
	Admit(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
	// Revoke 取消報名。拒絕原因為 ErrEventNotFound / ErrNotRegistered
	Revoke(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
}

type RSVPServiceImpl struct {
	repo repository.EventRepository
}

func NewRSVPService(repo repository.EventRepository) RSVPService {
	return &RSVPServiceImpl{repo: repo}
}

func (s *RSVPServiceImpl) Admit(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	event, err := s.repo.AddAttendee(ctx, eventID, userID)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, repository.ErrNoMatch) {
		// 基礎設施錯誤原樣往上傳，不歸類成容量拒絕
		return nil, err
	}

	return nil, s.diagnoseAdmitRejection(ctx, eventID, userID)
}

// diagnoseAdmitRejection 用唯讀查詢把 no-match 分類成精確的拒絕原因。
// 權威決定已經在原子更新時做完，這裡的讀取可能已經過期，
// 只是盡力給出人看得懂的解釋，不是第二個事實來源。
func (s *RSVPServiceImpl) diagnoseAdmitRejection(ctx context.Context, eventID, userID uuid.UUID) error {
	current, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return err
	}

	if current.HasAttendee(userID) {
		return apperrors.ErrAlreadyRegistered
	}
	if current.IsFull() {
		return apperrors.ErrEventAtCapacity
	}

	// 原子嘗試與診斷讀取之間條件翻轉了，呼叫端可以重試
	return apperrors.ErrRSVPConflict
}

func (s *RSVPServiceImpl) Revoke(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	event, err := s.repo.RemoveAttendee(ctx, eventID, userID)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, repository.ErrNoMatch) {
		return nil, err
	}

	if _, err := s.repo.FindByEventID(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return nil, apperrors.ErrNotRegistered
}
