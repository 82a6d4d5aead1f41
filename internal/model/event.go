package model

import (
	"time"

	"github.com/google/uuid"
)

// Category 活動分類類型
type Category string

const (
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategoryMeetup     Category = "meetup"
	CategoryConcert    Category = "concert"
	CategorySports     Category = "sports"
	CategoryParty      Category = "party"
	CategoryOther      Category = "other"
)

// IsValid 驗證分類是否有效
func (c Category) IsValid() bool {
	switch c {
	case CategoryConference, CategoryWorkshop, CategoryMeetup,
		CategoryConcert, CategorySports, CategoryParty, CategoryOther:
		return true
	}
	return false
}

// Event 活動模型
// attendees 只能由報名與取消這兩個條件更新變動，
// 其他欄位走版本檢查的更新路徑
type Event struct {
	ID          int         `json:"id" db:"id"`
	EventID     uuid.UUID   `json:"event_id" db:"event_id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Date        time.Time   `json:"date" db:"date"`
	Time        string      `json:"time" db:"time"`
	Location    string      `json:"location" db:"location"`
	Category    Category    `json:"category" db:"category"`
	Image       string      `json:"image,omitempty" db:"image"`
	Capacity    int         `json:"capacity" db:"capacity"`
	Attendees   []uuid.UUID `json:"attendees" db:"attendees"`
	Version     int         `json:"version" db:"version"`
	CreatorID   uuid.UUID   `json:"creator_id" db:"creator_id"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// AvailableSpots 剩餘名額，計算值不落庫
func (e *Event) AvailableSpots() int {
	return e.Capacity - len(e.Attendees)
}

// IsFull 檢查活動是否額滿
func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.Capacity
}

// HasAttendee 檢查使用者是否已報名
func (e *Event) HasAttendee(userID uuid.UUID) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// UpdateEventParams 活動欄位更新參數
// ExpectedVersion 為讀取時的版本，寫入時檢查以偵測 lost update
type UpdateEventParams struct {
	Title           *string
	Description     *string
	Date            *time.Time
	Time            *string
	Location        *string
	Category        *Category
	Image           *string
	Capacity        *int
	ExpectedVersion int
}

// EventSort 活動排序選項
type EventSort string

const (
	SortByDate    EventSort = "date"
	SortByNewest  EventSort = "newest"
	SortByPopular EventSort = "popular"
)

// ListEventsParams 列表查詢條件
type ListEventsParams struct {
	Category Category
	DateFrom *time.Time
	DateTo   *time.Time
	Upcoming bool
	Search   string
	Sort     EventSort
	Page     int
	Limit    int
}

// EventPage 分頁回應
type EventPage struct {
	Events []*Event `json:"events"`
	Page   int      `json:"page"`
	Pages  int      `json:"pages"`
	Total  int      `json:"total"`
}

// EventResponse RSVP 成功回應
type EventResponse struct {
	Message string `json:"message"`
	Event   *Event `json:"event"`
}
