package service

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"eventify/config"
	"eventify/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	if err := testDB.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running service tests...")

	code := m.Run()

	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) func() {
	t.Helper()
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE events, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	return func() {}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

func createTestUser(t *testing.T, name, email string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO users (user_id, name, email, password_hash)
		VALUES ($1, $2, $3, '$2a$10$testhash')
		RETURNING user_id
	`

	var userID uuid.UUID
	err := testDB.QueryRow(ctx, query, uuid.New(), name, email).Scan(&userID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

func createTestEvent(t *testing.T, creatorID uuid.UUID, title string, capacity int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO events (event_id, title, description, event_date, event_time,
			location, category, capacity, attendees, version, creator_id)
		VALUES ($1, $2, 'test description', $3, '19:00', 'Taipei', 'meetup', $4, '{}', 1, $5)
		RETURNING event_id
	`

	var eventID uuid.UUID
	err := testDB.QueryRow(ctx, query,
		uuid.New(), title, time.Now().AddDate(0, 0, 7), capacity, creatorID,
	).Scan(&eventID)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return eventID
}

func getAttendeeCount(t *testing.T, eventID uuid.UUID) int {
	t.Helper()
	ctx := context.Background()

	var count int
	err := testDB.QueryRow(ctx,
		"SELECT cardinality(attendees) FROM events WHERE event_id = $1", eventID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count attendees: %v", err)
	}

	return count
}
