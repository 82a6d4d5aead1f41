package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"eventify/internal/model"
	"eventify/internal/queue"
	"eventify/internal/storage"
	"eventify/internal/worker"

	"github.com/google/uuid"
)

func TestCleanupWorker_RemovesImage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 1. 準備：建立自製的 Memory Queue
	q := queue.NewCleanupQueue(10)

	// 2. 準備：用 channel 記錄 Remove 有沒有被呼叫
	removed := make(chan string, 1)
	store := &mockImageStore{
		onRemove: func(path string) error {
			removed <- path
			return nil
		},
	}

	// 3. 啟動 Worker
	w := worker.NewCleanupWorker(store, q)
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Failed to start worker: %v", err)
	}

	// 4. 執行：模擬刪除活動後丟入一筆清理任務
	task := &model.CleanupTask{
		TaskID:  uuid.New().String(),
		EventID: uuid.New(),
		Image:   "/uploads/stale.png",
	}
	q.PublishTask(ctx, task)

	// 5. 驗證：檢查 ImageStore 是否在時間內被觸發
	select {
	case path := <-removed:
		if path != "/uploads/stale.png" {
			t.Errorf("Removed wrong image: %s", path)
		}
	case <-time.After(1 * time.Second):
		t.Error("超時！Worker 沒有在時間內處理清理任務")
	}
}

func TestCleanupWorker_RetriesOnFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := queue.NewCleanupQueue(10)

	// 第一次 Remove 失敗，Nack(requeue) 後第二次成功
	var mu sync.Mutex
	attempts := 0
	done := make(chan bool, 1)
	store := &mockImageStore{
		onRemove: func(path string) error {
			mu.Lock()
			defer mu.Unlock()
			attempts++
			if attempts == 1 {
				return errors.New("storage temporarily unavailable")
			}
			done <- true
			return nil
		},
	}

	w := worker.NewCleanupWorker(store, q)
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Failed to start worker: %v", err)
	}

	q.PublishTask(ctx, &model.CleanupTask{
		TaskID:  uuid.New().String(),
		EventID: uuid.New(),
		Image:   "/uploads/flaky.png",
	})

	select {
	case <-done:
		mu.Lock()
		defer mu.Unlock()
		if attempts != 2 {
			t.Errorf("Expected 2 attempts, got %d", attempts)
		}
	case <-time.After(2 * time.Second):
		t.Error("超時！Worker 沒有重試失敗的清理任務")
	}
}

// 簡單的 Mock 實作
type mockImageStore struct {
	storage.ImageStore // 嵌入介面
	onRemove           func(path string) error
}

func (m *mockImageStore) Remove(_ context.Context, path string) error {
	return m.onRemove(path)
}
