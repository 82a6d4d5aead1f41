package service

import (
	"context"
	"errors"

	"eventify/internal/model"
	"eventify/internal/queue"
	"eventify/internal/repository"
	apperrors "eventify/pkg/app_errors"
	"eventify/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context, params model.ListEventsParams) (*model.EventPage, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// UpdateByEventID 版本檢查的欄位更新，只有 creator 可以改，
	// capacity 不得低於現有報名人數
	UpdateByEventID(ctx context.Context, eventID, requesterID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	// DeleteByEventID 刪除活動並派發圖片清理任務
	DeleteByEventID(ctx context.Context, eventID, requesterID uuid.UUID) error
	ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]*model.Event, error)
	ListAttendedBy(ctx context.Context, userID uuid.UUID) ([]*model.Event, error)
}

type EventServiceImpl struct {
	repo         repository.EventRepository
	cleanupQueue queue.CleanupQueue
}

func NewEventService(repo repository.EventRepository, cleanupQueue queue.CleanupQueue) EventService {
	return &EventServiceImpl{repo: repo, cleanupQueue: cleanupQueue}
}

func (s *EventServiceImpl) List(ctx context.Context, params model.ListEventsParams) (*model.EventPage, error) {
	if params.Limit <= 0 {
		params.Limit = 12
	}
	if params.Page <= 0 {
		params.Page = 1
	}

	events, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pages := (total + params.Limit - 1) / params.Limit
	return &model.EventPage{
		Events: events,
		Page:   params.Page,
		Pages:  pages,
		Total:  total,
	}, nil
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.Capacity < 1 {
		return nil, apperrors.ErrInvalidInput
	}
	if event.Category == "" {
		event.Category = model.CategoryOther
	}
	if !event.Category.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) UpdateByEventID(ctx context.Context, eventID, requesterID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	current, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if current.CreatorID != requesterID {
		return nil, apperrors.ErrNotEventOwner
	}
	if params.Category != nil && !params.Category.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	if params.Capacity != nil {
		if *params.Capacity < 1 {
			return nil, apperrors.ErrInvalidInput
		}
		// 容量下限預檢，給出精確錯誤；真正的保證在 Update 的述詞裡
		if *params.Capacity < len(current.Attendees) {
			return nil, apperrors.ErrCapacityBelowAttendees
		}
	}

	params.ExpectedVersion = current.Version
	updated, err := s.repo.Update(ctx, eventID, params)
	if err == nil {
		s.dispatchReplacedImageCleanup(ctx, current, params)
		return updated, nil
	}
	if !errors.Is(err, repository.ErrNoMatch) {
		return nil, err
	}

	// no-match 分類：活動被刪了、容量述詞擋下、或版本變了
	latest, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	if params.Capacity != nil && *params.Capacity < len(latest.Attendees) {
		return nil, apperrors.ErrCapacityBelowAttendees
	}
	// lost update：呼叫端需重新讀取後再試，這裡不自動重試
	return nil, apperrors.ErrVersionConflict
}

// dispatchReplacedImageCleanup 換圖後把舊圖丟給 cleanup worker
func (s *EventServiceImpl) dispatchReplacedImageCleanup(ctx context.Context, before *model.Event, params model.UpdateEventParams) {
	if params.Image == nil || before.Image == "" || before.Image == *params.Image {
		return
	}
	s.publishCleanup(ctx, before.EventID, before.Image)
}

func (s *EventServiceImpl) DeleteByEventID(ctx context.Context, eventID, requesterID uuid.UUID) error {
	current, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	if current.CreatorID != requesterID {
		return apperrors.ErrNotEventOwner
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}

	if current.Image != "" {
		s.publishCleanup(ctx, eventID, current.Image)
	}
	return nil
}

func (s *EventServiceImpl) publishCleanup(ctx context.Context, eventID uuid.UUID, image string) {
	task := &model.CleanupTask{
		TaskID:  uuid.New().String(),
		EventID: eventID,
		Image:   image,
	}
	// 清理失敗只記 log，不影響主流程
	if err := s.cleanupQueue.PublishTask(ctx, task); err != nil {
		logger.WithComponent("service").Error("publish cleanup task failed",
			zap.String("event_id", eventID.String()),
			zap.String("image", image),
			zap.Error(err))
	}
}

func (s *EventServiceImpl) ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]*model.Event, error) {
	return s.repo.ListByCreator(ctx, userID)
}

func (s *EventServiceImpl) ListAttendedBy(ctx context.Context, userID uuid.UUID) ([]*model.Event, error) {
	return s.repo.ListByAttendee(ctx, userID)
}
