package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *database.DB) EventRepository {
	return &eventRepo{db: db}
}

// Create inserts a new event
func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, slug, name, date, time, location, category, short_description, full_description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Slug, event.Name, event.Date, event.Time, event.Location,
		event.Category, event.ShortDescription, event.FullDescription, event.Image,
		event.CreatedAt, time.Now(),
	)
	return err
}

// Update rewrites all mutable fields of an event
func (r *eventRepo) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET slug = $2, name = $3, date = $4, time = $5, location = $6, category = $7,
		    short_description = $8, full_description = $9, image = $10, updated_at = $11
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Slug, event.Name, event.Date, event.Time, event.Location,
		event.Category, event.ShortDescription, event.FullDescription, event.Image,
		time.Now(),
	)
	return err
}

// Delete removes an event permanently
func (r *eventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	return err
}

// GetByID retrieves an event by ID
func (r *eventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug retrieves an event by its URL slug
func (r *eventRepo) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *eventRepo) getOne(ctx context.Context, column, value string) (*models.Event, error) {
	query := `
		SELECT id, slug, name, date, time, location, category, short_description, full_description, image, created_at, updated_at
		FROM events WHERE ` + column + ` = $1
	`

	var event models.Event
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&event.ID, &event.Slug, &event.Name, &event.Date, &event.Time, &event.Location,
		&event.Category, &event.ShortDescription, &event.FullDescription, &event.Image,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// SlugExists checks if an event with the given slug exists
func (r *eventRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM events WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves all events ordered by date ascending
func (r *eventRepo) List(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, slug, name, date, time, location, category, short_description, full_description, image, created_at, updated_at
		FROM events ORDER BY date ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID, &event.Slug, &event.Name, &event.Date, &event.Time, &event.Location,
			&event.Category, &event.ShortDescription, &event.FullDescription, &event.Image,
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}
