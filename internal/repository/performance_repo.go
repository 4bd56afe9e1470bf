package repository

import (
	"context"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// performanceRepo is the concrete implementation of PerformanceRepository
type performanceRepo struct {
	db *database.DB
}

// NewPerformanceRepo creates a new performance application repository
func NewPerformanceRepo(db *database.DB) PerformanceRepository {
	return &performanceRepo{db: db}
}

// Create inserts a new performance application
func (r *performanceRepo) Create(ctx context.Context, app *models.PerformanceApplication) error {
	query := `
		INSERT INTO performance_applications (id, group_name, event, contact_name, email, performance_type, audition_link, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.GroupName, app.Event, app.ContactName, app.Email,
		app.PerformanceType, app.AuditionLink, app.SubmittedAt,
	)
	return err
}

// List retrieves all performance applications, newest first
func (r *performanceRepo) List(ctx context.Context) ([]*models.PerformanceApplication, error) {
	query := `
		SELECT id, group_name, event, contact_name, email, performance_type, audition_link, submitted_at
		FROM performance_applications ORDER BY submitted_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.PerformanceApplication
	for rows.Next() {
		var app models.PerformanceApplication
		err := rows.Scan(
			&app.ID, &app.GroupName, &app.Event, &app.ContactName, &app.Email,
			&app.PerformanceType, &app.AuditionLink, &app.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, &app)
	}
	return apps, rows.Err()
}
