package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"eventify/internal/repository"
	"eventify/internal/service"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 模擬真實場景：100 個使用者同時搶 10 個名額
func TestConcurrentAdmit_NoOverbooking(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	eventRepo := repository.NewEventRepository(getTestDB())
	rsvpService := service.NewRSVPService(eventRepo)

	// 併發參數
	concurrentUsers := 100 // 100 個不同使用者
	capacity := 10         // 名額只有 10 個

	creatorID := createTestUser(t, "Organizer", "organizer@test.com")
	eventID := createTestEvent(t, creatorID, "Popular Meetup", capacity)

	userIDs := make([]uuid.UUID, concurrentUsers)
	for i := 0; i < concurrentUsers; i++ {
		userIDs[i] = uuid.New()
	}

	// 收集結果
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	atCapacityCount := 0
	otherErrs := []error{}

	for i := 0; i < concurrentUsers; i++ {
		wg.Add(1)
		go func(userIndex int) {
			defer wg.Done()

			_, err := rsvpService.Admit(ctx, eventID, userIDs[userIndex])

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successCount++
			case errors.Is(err, apperrors.ErrEventAtCapacity):
				atCapacityCount++
			default:
				otherErrs = append(otherErrs, err)
			}
		}(i)
	}

	wg.Wait()

	t.Logf("100 users competing for 10 spots - Success: %d, AtCapacity: %d", successCount, atCapacityCount)

	// 關鍵斷言：剛好 10 人成功，不能超賣
	assert.Equal(t, capacity, successCount, "Successful admits should equal capacity")
	assert.Equal(t, concurrentUsers-capacity, atCapacityCount, "90 users should be rejected at capacity")
	assert.Empty(t, otherErrs, "No unexpected errors")
	assert.Equal(t, capacity, getAttendeeCount(t, eventID), "Attendee list should equal capacity")
}

// 同一個使用者同時送出多次報名，只能成功一次
func TestConcurrentAdmit_DuplicateUser(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	eventRepo := repository.NewEventRepository(getTestDB())
	rsvpService := service.NewRSVPService(eventRepo)

	creatorID := createTestUser(t, "Organizer", "organizer@test.com")
	eventID := createTestEvent(t, creatorID, "Double Click Meetup", 10)
	userID := uuid.New()

	attempts := 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	duplicateCount := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := rsvpService.Admit(ctx, eventID, userID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successCount++
			case errors.Is(err, apperrors.ErrAlreadyRegistered):
				duplicateCount++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, successCount, "Only one attempt should succeed")
	assert.Equal(t, attempts-1, duplicateCount)
	assert.Equal(t, 1, getAttendeeCount(t, eventID), "User should appear exactly once")
}

// 容量 2 的活動，三個人同時報名：恰好兩人成功
func TestConcurrentAdmit_LastSpot(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	eventRepo := repository.NewEventRepository(getTestDB())
	rsvpService := service.NewRSVPService(eventRepo)

	creatorID := createTestUser(t, "Organizer", "organizer@test.com")
	eventID := createTestEvent(t, creatorID, "Tiny Meetup", 2)

	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0

	for _, userID := range users {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()

			if _, err := rsvpService.Admit(ctx, eventID, id); err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}(userID)
	}

	wg.Wait()

	assert.Equal(t, 2, successCount)
	assert.Equal(t, 2, getAttendeeCount(t, eventID))
}

// 報名與取消交錯，名額釋放後要能被重新使用
func TestAdmitRevokeCycle(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	eventRepo := repository.NewEventRepository(getTestDB())
	rsvpService := service.NewRSVPService(eventRepo)

	creatorID := createTestUser(t, "Organizer", "organizer@test.com")
	eventID := createTestEvent(t, creatorID, "Cycle Meetup", 1)

	first := uuid.New()
	second := uuid.New()

	_, err := rsvpService.Admit(ctx, eventID, first)
	require.NoError(t, err)

	// 滿了，第二個人進不來
	_, err = rsvpService.Admit(ctx, eventID, second)
	assert.ErrorIs(t, err, apperrors.ErrEventAtCapacity)

	// 第一個人取消後名額釋放
	_, err = rsvpService.Revoke(ctx, eventID, first)
	require.NoError(t, err)

	_, err = rsvpService.Admit(ctx, eventID, second)
	require.NoError(t, err)
	assert.Equal(t, 1, getAttendeeCount(t, eventID))
}
