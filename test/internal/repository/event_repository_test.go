package repository

import (
	"context"
	"testing"
	"time"

	"eventify/internal/model"
	"eventify/internal/repository"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	event := &model.Event{
		EventID:     uuid.New(),
		Title:       "Go Meetup 2026",
		Description: "Monthly Go meetup",
		Date:        time.Now().AddDate(0, 1, 0),
		Time:        "19:00",
		Location:    "Taipei",
		Category:    model.CategoryMeetup,
		Capacity:    30,
		CreatorID:   creatorID,
	}

	created, err := repo.Create(ctx, event)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, event.EventID, created.EventID)
	assert.Equal(t, "Go Meetup 2026", created.Title)
	assert.Equal(t, 30, created.Capacity)
	assert.Empty(t, created.Attendees)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, creatorID, created.CreatorID)
	assert.NotZero(t, created.CreatedAt)
	assert.NotZero(t, created.UpdatedAt)
}

func TestEventRepository_FindByEventID(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")
	eventID := createTestEvent(t, creatorID, "Findable Event", 10)

	t.Run("found", func(t *testing.T) {
		event, err := repo.FindByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, eventID, event.EventID)
		assert.Equal(t, "Findable Event", event.Title)
		assert.NotNil(t, event.Attendees)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := repo.FindByEventID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_AddAttendee(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	t.Run("success", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Open Event", 2)
		userID := uuid.New()

		event, err := repo.AddAttendee(ctx, eventID, userID)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{userID}, event.Attendees)
		assert.Equal(t, 2, event.Version, "版本要隨報名遞增")
	})

	t.Run("no_match_when_already_registered", func(t *testing.T) {
		userID := uuid.New()
		eventID := createTestEventWithAttendees(t, creatorID, "Dup Event", 5, []uuid.UUID{userID})

		_, err := repo.AddAttendee(ctx, eventID, userID)

		assert.ErrorIs(t, err, repository.ErrNoMatch)
		// 名單不能出現重複
		assert.Equal(t, []uuid.UUID{userID}, getAttendees(t, eventID))
	})

	t.Run("no_match_when_at_capacity", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		eventID := createTestEventWithAttendees(t, creatorID, "Full Event", 2, []uuid.UUID{a, b})

		_, err := repo.AddAttendee(ctx, eventID, uuid.New())

		assert.ErrorIs(t, err, repository.ErrNoMatch)
		// 名單不能超過容量
		assert.Len(t, getAttendees(t, eventID), 2)
	})

	t.Run("no_match_when_event_missing", func(t *testing.T) {
		_, err := repo.AddAttendee(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrNoMatch)
	})
}

func TestEventRepository_RemoveAttendee(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	t.Run("success", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		eventID := createTestEventWithAttendees(t, creatorID, "Leave Event", 5, []uuid.UUID{a, b})

		event, err := repo.RemoveAttendee(ctx, eventID, a)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{b}, event.Attendees)
	})

	t.Run("no_match_when_not_registered", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Empty Event", 5)

		_, err := repo.RemoveAttendee(ctx, eventID, uuid.New())

		assert.ErrorIs(t, err, repository.ErrNoMatch)
	})

	t.Run("no_match_when_event_missing", func(t *testing.T) {
		_, err := repo.RemoveAttendee(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrNoMatch)
	})
}

func TestEventRepository_Update(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	t.Run("success", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Old Title", 10)

		newTitle := "New Title"
		newCapacity := 20
		updated, err := repo.Update(ctx, eventID, model.UpdateEventParams{
			Title:           &newTitle,
			Capacity:        &newCapacity,
			ExpectedVersion: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, 20, updated.Capacity)
		assert.Equal(t, 2, updated.Version)
	})

	t.Run("no_match_on_stale_version", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Contended Event", 10)

		title := "Stale Write"
		_, err := repo.Update(ctx, eventID, model.UpdateEventParams{
			Title:           &title,
			ExpectedVersion: 99,
		})

		assert.ErrorIs(t, err, repository.ErrNoMatch)
	})

	t.Run("no_match_when_capacity_below_attendees", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		eventID := createTestEventWithAttendees(t, creatorID, "Floor Event", 3, []uuid.UUID{a, b})

		// 容量不能低於現有報名人數
		newCapacity := 1
		_, err := repo.Update(ctx, eventID, model.UpdateEventParams{
			Capacity:        &newCapacity,
			ExpectedVersion: 1,
		})

		assert.ErrorIs(t, err, repository.ErrNoMatch)

		current, err := repo.FindByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, 3, current.Capacity, "容量不應被修改")
		assert.Len(t, current.Attendees, 2, "名單不應被修改")
	})

	t.Run("no_fields", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Untouched Event", 10)

		_, err := repo.Update(ctx, eventID, model.UpdateEventParams{ExpectedVersion: 1})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	t.Run("success", func(t *testing.T) {
		eventID := createTestEvent(t, creatorID, "Doomed Event", 10)

		err := repo.Delete(ctx, eventID)

		require.NoError(t, err)
		_, err = repo.FindByEventID(ctx, eventID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("not_found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_List(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")

	insertEvent := func(title string, category model.Category, date time.Time, attendees []uuid.UUID) {
		t.Helper()
		if attendees == nil {
			attendees = []uuid.UUID{}
		}
		_, err := testDB.Exec(ctx, `
			INSERT INTO events (event_id, title, description, event_date, event_time,
				location, category, capacity, attendees, version, creator_id)
			VALUES ($1, $2, 'desc', $3, '18:00', 'Taipei', $4, 100, $5, 1, $6)
		`, uuid.New(), title, date, category, attendees, creatorID)
		require.NoError(t, err)
	}

	future := time.Now().AddDate(0, 0, 14)
	insertEvent("GopherCon", model.CategoryConference, future, []uuid.UUID{uuid.New(), uuid.New()})
	insertEvent("City Marathon", model.CategorySports, future.AddDate(0, 0, 1), []uuid.UUID{uuid.New()})
	insertEvent("Old Workshop", model.CategoryWorkshop, time.Now().AddDate(0, 0, -30), nil)

	t.Run("upcoming_only_by_default", func(t *testing.T) {
		events, total, err := repo.List(ctx, model.ListEventsParams{Upcoming: true, Page: 1, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, events, 2)
	})

	t.Run("filter_by_category", func(t *testing.T) {
		events, total, err := repo.List(ctx, model.ListEventsParams{Category: model.CategorySports, Page: 1, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "City Marathon", events[0].Title)
	})

	t.Run("search_title", func(t *testing.T) {
		events, total, err := repo.List(ctx, model.ListEventsParams{Search: "gopher", Page: 1, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "GopherCon", events[0].Title)
	})

	t.Run("sort_popular", func(t *testing.T) {
		events, _, err := repo.List(ctx, model.ListEventsParams{Sort: model.SortByPopular, Page: 1, Limit: 12})
		require.NoError(t, err)
		require.NotEmpty(t, events)
		assert.Equal(t, "GopherCon", events[0].Title, "報名多的排前面")
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := repo.List(ctx, model.ListEventsParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, events, 1)
	})
}

func TestEventRepository_ListByAttendee(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")
	userID := uuid.New()

	createTestEventWithAttendees(t, creatorID, "Attending A", 10, []uuid.UUID{userID})
	createTestEventWithAttendees(t, creatorID, "Attending B", 10, []uuid.UUID{uuid.New(), userID})
	createTestEvent(t, creatorID, "Not Attending", 10)

	events, err := repo.ListByAttendee(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventRepository_ListByCreator(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	creatorID := createTestUser(t, "Creator", "creator@test.com")
	otherID := createTestUser(t, "Other", "other@test.com")

	createTestEvent(t, creatorID, "Mine", 10)
	createTestEvent(t, otherID, "Theirs", 10)

	events, err := repo.ListByCreator(ctx, creatorID)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].Title)
}
