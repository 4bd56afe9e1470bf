package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// vendorRepo is the concrete implementation of VendorRepository
type vendorRepo struct {
	db *database.DB
}

// NewVendorRepo creates a new vendor application repository
func NewVendorRepo(db *database.DB) VendorRepository {
	return &vendorRepo{db: db}
}

// Create inserts a new vendor application
func (r *vendorRepo) Create(ctx context.Context, app *models.VendorApplication) error {
	query := `
		INSERT INTO vendor_applications (id, name, organization, email, booth_type, check_in_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.Name, app.Organization, app.Email, app.BoothType,
		app.CheckInStatus, app.CreatedAt,
	)
	return err
}

// GetByID retrieves a vendor application by ID
func (r *vendorRepo) GetByID(ctx context.Context, id string) (*models.VendorApplication, error) {
	query := `
		SELECT id, name, organization, email, booth_type, check_in_status, created_at, checked_in_at
		FROM vendor_applications WHERE id = $1
	`

	var app models.VendorApplication
	var checkedInAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Organization, &app.Email, &app.BoothType,
		&app.CheckInStatus, &app.CreatedAt, &checkedInAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if checkedInAt.Valid {
		app.CheckedInAt = &checkedInAt.Time
	}
	return &app, nil
}

// List retrieves all vendor applications, newest first
func (r *vendorRepo) List(ctx context.Context) ([]*models.VendorApplication, error) {
	query := `
		SELECT id, name, organization, email, booth_type, check_in_status, created_at, checked_in_at
		FROM vendor_applications ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.VendorApplication
	for rows.Next() {
		var app models.VendorApplication
		var checkedInAt sql.NullTime

		err := rows.Scan(
			&app.ID, &app.Name, &app.Organization, &app.Email, &app.BoothType,
			&app.CheckInStatus, &app.CreatedAt, &checkedInAt,
		)
		if err != nil {
			return nil, err
		}
		if checkedInAt.Valid {
			app.CheckedInAt = &checkedInAt.Time
		}
		apps = append(apps, &app)
	}
	return apps, rows.Err()
}

// CheckIn transitions an application from pending to checkedIn in a
// single guarded update. The status predicate makes concurrent scans of
// the same pass race-safe: only one update can transition the row, and
// a repeat scan affects zero rows instead of rewriting the timestamp.
func (r *vendorRepo) CheckIn(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE vendor_applications
		SET check_in_status = $2, checked_in_at = $3
		WHERE id = $1 AND check_in_status = $4
	`
	result, err := r.db.ExecContext(ctx, query, id, models.CheckInStatusCheckedIn, at, models.CheckInStatusPending)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
