package service

import (
	"context"
	"sort"
	"time"

	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sponsorService is the concrete implementation of SponsorService
type sponsorService struct {
	repo repository.SponsorRepository
	log  zerolog.Logger
}

// newSponsorService creates a new SponsorService
func newSponsorService(repo repository.SponsorRepository, log zerolog.Logger) *sponsorService {
	return &sponsorService{
		repo: repo,
		log:  log.With().Str("service", "sponsor").Logger(),
	}
}

// List returns sponsors ordered by level rank then name. The repository
// already orders its query; the sort here keeps the guarantee even for
// stores that return records unordered.
func (s *sponsorService) List(ctx context.Context) ([]*models.Sponsor, error) {
	sponsors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sponsors, func(i, j int) bool {
		if sponsors[i].Level.Rank() != sponsors[j].Level.Rank() {
			return sponsors[i].Level.Rank() < sponsors[j].Level.Rank()
		}
		return sponsors[i].Name < sponsors[j].Name
	})

	return sponsors, nil
}

// Create persists a new sponsor
func (s *sponsorService) Create(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error) {
	if sponsor.ID == "" {
		sponsor.ID = uuid.New().String()
	}
	sponsor.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, sponsor); err != nil {
		return nil, err
	}

	s.log.Info().Str("sponsor_id", sponsor.ID).Str("level", string(sponsor.Level)).Msg("Sponsor created")
	return sponsor, nil
}

// Update rewrites an existing sponsor
func (s *sponsorService) Update(ctx context.Context, sponsor *models.Sponsor) error {
	existing, err := s.repo.GetByID(ctx, sponsor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Update(ctx, sponsor)
}

// Delete removes a sponsor permanently
func (s *sponsorService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
