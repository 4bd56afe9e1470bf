package service

import (
	"context"
	"time"

	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// teamService is the concrete implementation of TeamService. The
// database is the single source of truth for the roster; the seed
// migration carries the initial members.
type teamService struct {
	repo repository.TeamRepository
	log  zerolog.Logger
}

// newTeamService creates a new TeamService
func newTeamService(repo repository.TeamRepository, log zerolog.Logger) *teamService {
	return &teamService{
		repo: repo,
		log:  log.With().Str("service", "team").Logger(),
	}
}

// List returns all team members
func (s *teamService) List(ctx context.Context) ([]*models.TeamMember, error) {
	return s.repo.List(ctx)
}

// Create persists a new team member
func (s *teamService) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().Str("member_id", member.ID).Str("role", member.Role).Msg("Team member created")
	return member, nil
}

// Update rewrites an existing team member
func (s *teamService) Update(ctx context.Context, member *models.TeamMember) error {
	existing, err := s.repo.GetByID(ctx, member.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Update(ctx, member)
}

// Delete removes a team member permanently
func (s *teamService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
