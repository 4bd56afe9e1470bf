package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// teamRepo is the concrete implementation of TeamRepository
type teamRepo struct {
	db *database.DB
}

// NewTeamRepo creates a new team member repository
func NewTeamRepo(db *database.DB) TeamRepository {
	return &teamRepo{db: db}
}

// Create inserts a new team member
func (r *teamRepo) Create(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, role, image, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Role, member.Image, member.Bio,
		member.CreatedAt, time.Now(),
	)
	return err
}

// Update rewrites all mutable fields of a team member
func (r *teamRepo) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members SET name = $2, role = $3, image = $4, bio = $5, updated_at = $6
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Role, member.Image, member.Bio, time.Now(),
	)
	return err
}

// Delete removes a team member permanently
func (r *teamRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = $1", id)
	return err
}

// GetByID retrieves a team member by ID
func (r *teamRepo) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	query := `SELECT id, name, role, image, bio, created_at, updated_at FROM team_members WHERE id = $1`

	var member models.TeamMember
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Role, &member.Image, &member.Bio,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves all team members in insertion order
func (r *teamRepo) List(ctx context.Context) ([]*models.TeamMember, error) {
	query := `SELECT id, name, role, image, bio, created_at, updated_at FROM team_members ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		var member models.TeamMember
		err := rows.Scan(
			&member.ID, &member.Name, &member.Role, &member.Image, &member.Bio,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, &member)
	}
	return members, rows.Err()
}
