package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// sponsorRepo is the concrete implementation of SponsorRepository
type sponsorRepo struct {
	db *database.DB
}

// NewSponsorRepo creates a new sponsor repository
func NewSponsorRepo(db *database.DB) SponsorRepository {
	return &sponsorRepo{db: db}
}

// Create inserts a new sponsor
func (r *sponsorRepo) Create(ctx context.Context, sponsor *models.Sponsor) error {
	query := `
		INSERT INTO sponsors (id, name, logo, level, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		sponsor.ID, sponsor.Name, sponsor.Logo, sponsor.Level, sponsor.Website,
		sponsor.CreatedAt, time.Now(),
	)
	return err
}

// Update rewrites all mutable fields of a sponsor
func (r *sponsorRepo) Update(ctx context.Context, sponsor *models.Sponsor) error {
	query := `
		UPDATE sponsors SET name = $2, logo = $3, level = $4, website = $5, updated_at = $6
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		sponsor.ID, sponsor.Name, sponsor.Logo, sponsor.Level, sponsor.Website, time.Now(),
	)
	return err
}

// Delete removes a sponsor permanently
func (r *sponsorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sponsors WHERE id = $1", id)
	return err
}

// GetByID retrieves a sponsor by ID
func (r *sponsorRepo) GetByID(ctx context.Context, id string) (*models.Sponsor, error) {
	query := `SELECT id, name, logo, level, website, created_at, updated_at FROM sponsors WHERE id = $1`

	var sponsor models.Sponsor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sponsor.ID, &sponsor.Name, &sponsor.Logo, &sponsor.Level, &sponsor.Website,
		&sponsor.CreatedAt, &sponsor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// List retrieves all sponsors ordered by level rank then name
func (r *sponsorRepo) List(ctx context.Context) ([]*models.Sponsor, error) {
	query := `
		SELECT id, name, logo, level, website, created_at, updated_at
		FROM sponsors
		ORDER BY CASE level
			WHEN 'Diamond' THEN 0
			WHEN 'Gold' THEN 1
			WHEN 'Silver' THEN 2
			WHEN 'Bronze' THEN 3
			ELSE 4
		END, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsors []*models.Sponsor
	for rows.Next() {
		var sponsor models.Sponsor
		err := rows.Scan(
			&sponsor.ID, &sponsor.Name, &sponsor.Logo, &sponsor.Level, &sponsor.Website,
			&sponsor.CreatedAt, &sponsor.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, &sponsor)
	}
	return sponsors, rows.Err()
}
