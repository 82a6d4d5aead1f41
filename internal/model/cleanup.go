package model

import "github.com/google/uuid"

// CleanupTask 活動刪除後的圖片清理任務
type CleanupTask struct {
	TaskID  string    `json:"task_id"`
	EventID uuid.UUID `json:"event_id"`
	Image   string    `json:"image"`
}
