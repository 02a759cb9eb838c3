package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-admin-api/internal/model"
	apperrors "event-admin-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is the store adapter between request handling and the
// events table.
type EventRepository interface {
	Find(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	Insert(ctx context.Context, event *model.Event) (*model.Event, error)
	UpdateByID(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = "id, title, category, location, price, date, image_url, description, created_at, updated_at"

func scanEvent(row pgx.Row, event *model.Event) error {
	return row.Scan(
		&event.ID,
		&event.Title,
		&event.Category,
		&event.Location,
		&event.Price,
		&event.Date,
		&event.ImageURL,
		&event.Description,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
}

func (r *EventRepositoryImpl) Find(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, filter.Search)
		argPos++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY created_at DESC
	`, eventColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) Insert(ctx context.Context, event *model.Event) (*model.Event, error) {
	// id, created_at and updated_at come from column defaults so the store
	// stays authoritative for all three.
	query := fmt.Sprintf(`
		INSERT INTO events (title, category, location, price, date, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, eventColumns)

	row := r.pool.QueryRow(ctx, query,
		event.Title,
		event.Category,
		event.Location,
		event.Price,
		event.Date,
		event.ImageURL,
		event.Description,
	)
	if err := scanEvent(row, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) UpdateByID(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		appendSet("title", *params.Title)
	}
	if params.Category != nil {
		appendSet("category", *params.Category)
	}
	if params.Location != nil {
		appendSet("location", *params.Location)
	}
	if params.Price != nil {
		appendSet("price", *params.Price)
	}
	if params.Date != nil {
		appendSet("date", *params.Date)
	}
	if params.ImageURL != nil {
		appendSet("image_url", *params.ImageURL)
	}
	if params.Description != nil {
		appendSet("description", *params.Description)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	appendSet("updated_at", time.Now().UTC())

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	var event model.Event
	if err := scanEvent(r.pool.QueryRow(ctx, query, args...), &event); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
