package worker

import (
	"context"

	"eventify/internal/queue"
	"eventify/internal/storage"
	"eventify/pkg/logger"

	"go.uber.org/zap"
)

type CleanupWorker interface {
	// 訂閱清理任務隊列
	Start(ctx context.Context) error
}

type CleanupWorkerImpl struct {
	store storage.ImageStore
	queue queue.CleanupQueue
}

func NewCleanupWorker(store storage.ImageStore, queue queue.CleanupQueue) CleanupWorker {
	return &CleanupWorkerImpl{
		store: store,
		queue: queue,
	}
}

func (w *CleanupWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeTasks(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			err := w.store.Remove(ctx, msg.Data.Image)
			if err != nil {
				// 儲存暫時出錯就重試；活動列已刪除，圖片清理晚一點無妨
				log.Warn("remove image failed, will retry",
					zap.String("task_id", msg.Data.TaskID),
					zap.String("image", msg.Data.Image),
					zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
