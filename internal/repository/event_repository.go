package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventify/internal/model"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoMatch 條件更新沒有命中任何列：述詞不成立或活動不存在。
// 不在這裡分類原因，由 service 的診斷查詢決定要回哪個錯誤。
var ErrNoMatch = errors.New("no matching event")

const eventColumns = `id, event_id, title, description, event_date, event_time,
		location, category, image, capacity, attendees, version, creator_id,
		created_at, updated_at`

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, params model.ListEventsParams) ([]*model.Event, int, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Event, error)
	ListByAttendee(ctx context.Context, userID uuid.UUID) ([]*model.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error

	// 報名與取消專用的原子條件更新。
	// 述詞與變更在同一條單列 UPDATE 內，對同一列的併發呼叫由資料庫序列化。
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
	RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Image,
		&event.Capacity,
		&event.Attendees,
		&event.Version,
		&event.CreatorID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if event.Attendees == nil {
		event.Attendees = []uuid.UUID{}
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (event_id, title, description, event_date, event_time,
			location, category, image, capacity, attendees, version, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '{}', 1, $10)
		RETURNING %s
	`, eventColumns)

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Title, event.Description, event.Date, event.Time,
		event.Location, event.Category, event.Image, event.Capacity, event.CreatorID,
	))
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, params model.ListEventsParams) ([]*model.Event, int, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Category != "" && params.Category != "all" {
		wheres = append(wheres, fmt.Sprintf("category = $%d", argPos))
		args = append(args, params.Category)
		argPos++
	}
	if params.DateFrom != nil {
		wheres = append(wheres, fmt.Sprintf("event_date >= $%d", argPos))
		args = append(args, *params.DateFrom)
		argPos++
	}
	if params.DateTo != nil {
		wheres = append(wheres, fmt.Sprintf("event_date <= $%d", argPos))
		args = append(args, *params.DateTo)
		argPos++
	}
	if params.Upcoming {
		wheres = append(wheres, "event_date >= CURRENT_DATE")
	}
	if params.Search != "" {
		wheres = append(wheres, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+params.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(wheres) > 0 {
		whereClause = "WHERE " + strings.Join(wheres, " AND ")
	}

	orderBy := "event_date ASC"
	switch params.Sort {
	case model.SortByNewest:
		orderBy = "created_at DESC"
	case model.SortByPopular:
		orderBy = "cardinality(attendees) DESC, event_date ASC"
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 12
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, eventColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE event_id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE creator_id = $1
		ORDER BY event_date ASC
	`, eventColumns)
	return r.queryEvents(ctx, query, creatorID)
}

func (r *EventRepositoryImpl) ListByAttendee(ctx context.Context, userID uuid.UUID) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE $1 = ANY(attendees)
		ORDER BY event_date ASC
	`, eventColumns)
	return r.queryEvents(ctx, query, userID)
}

func (r *EventRepositoryImpl) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Update 版本檢查的欄位更新。
// WHERE 帶上讀取時的 version 偵測 lost update；若有改 capacity，
// 同一條述詞也檢查 capacity 不得低於現有報名人數，
// 讓檢查與寫入是同一個原子步驟。
func (r *EventRepositoryImpl) Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		addSet("title", *params.Title)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.Date != nil {
		addSet("event_date", *params.Date)
	}
	if params.Time != nil {
		addSet("event_time", *params.Time)
	}
	if params.Location != nil {
		addSet("location", *params.Location)
	}
	if params.Category != nil {
		addSet("category", *params.Category)
	}
	if params.Image != nil {
		addSet("image", *params.Image)
	}

	capacityGuard := ""
	if params.Capacity != nil {
		capacityGuard = fmt.Sprintf(" AND cardinality(attendees) <= $%d", argPos)
		addSet("capacity", *params.Capacity)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	sets = append(sets, "version = version + 1")

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add event_id, expected version
	args = append(args, eventID, params.ExpectedVersion)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE event_id = $%d AND version = $%d%s
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, argPos+1, capacityGuard, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNoMatch
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, eventID uuid.UUID) error {
	query := `
		DELETE FROM events
		WHERE event_id = $1
	`

	result, err := r.pool.Exec(ctx, query, eventID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// AddAttendee 單條 UPDATE 內同時檢查「尚未報名」與「未額滿」並加入 attendees。
// 資料庫取得列鎖後會重新求值述詞，因此兩個併發請求搶最後一個名額時，
// 恰好一個命中、另一個拿到 ErrNoMatch，容量上限與成員不重複在任何交錯下都成立。
func (r *EventRepositoryImpl) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET attendees = array_append(attendees, $2),
			version = version + 1,
			updated_at = $3
		WHERE event_id = $1
			AND NOT ($2 = ANY(attendees))
			AND cardinality(attendees) < capacity
		RETURNING %s
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID, userID, time.Now().UTC()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNoMatch
		}
		return nil, err
	}
	return event, nil
}

// RemoveAttendee 移除只需要成員述詞，不用檢查容量（移除不會超過容量）。
func (r *EventRepositoryImpl) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET attendees = array_remove(attendees, $2),
			version = version + 1,
			updated_at = $3
		WHERE event_id = $1
			AND $2 = ANY(attendees)
		RETURNING %s
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID, userID, time.Now().UTC()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNoMatch
		}
		return nil, err
	}
	return event, nil
}
