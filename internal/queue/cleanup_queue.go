package queue

import (
	"context"

	"eventify/internal/model"
)

type Delivery struct {
	Data *model.CleanupTask
	Ack  func()
	Nack func(requeue bool)
}

type CleanupQueue interface {
	// 發送清理任務到隊列
	PublishTask(ctx context.Context, task *model.CleanupTask) error
	// 訂閱清理任務隊列
	SubscribeTasks(ctx context.Context) (<-chan Delivery, error)
}

type CleanupQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列，單機部署與測試用
	ch chan *model.CleanupTask
}

func NewCleanupQueue(bufferSize int) CleanupQueue {
	return &CleanupQueueImpl{
		ch: make(chan *model.CleanupTask, bufferSize),
	}
}

func (q *CleanupQueueImpl) PublishTask(ctx context.Context, task *model.CleanupTask) error {
	q.ch <- task
	return nil
}

func (q *CleanupQueueImpl) SubscribeTasks(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case task, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: task,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- task // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
