package service

import (
	"context"
	"fmt"
	"time"

	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// performanceService is the concrete implementation of PerformanceService
type performanceService struct {
	repo repository.PerformanceRepository
	mail mailer.Mailer
	cfg  *config.Config
	log  zerolog.Logger
}

// newPerformanceService creates a new PerformanceService
func newPerformanceService(repo repository.PerformanceRepository, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *performanceService {
	return &performanceService{
		repo: repo,
		mail: mail,
		cfg:  cfg,
		log:  log.With().Str("service", "performance").Logger(),
	}
}

// Apply records a group's performance application. Create-only: there
// is no edit or delete surface for these records.
func (s *performanceService) Apply(ctx context.Context, app *models.PerformanceApplication) (*models.PerformanceApplication, error) {
	app.ID = uuid.New().String()
	app.SubmittedAt = time.Now()

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("group", app.GroupName).Msg("Performance application received")

	if s.mail != nil {
		msg := mailer.Message{
			To:      s.cfg.Email.AdminEmail,
			Subject: fmt.Sprintf("New performance application: %s", app.GroupName),
			Text: fmt.Sprintf(
				"%s (%s) applied to perform %s at %s. Audition link: %s",
				app.GroupName, app.ContactName, app.PerformanceType, app.Event, app.AuditionLink,
			),
		}
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Warn().Err(err).Str("application_id", app.ID).Msg("Performance notification email failed")
		}
	}

	return app, nil
}

// List returns all performance applications for the admin screen
func (s *performanceService) List(ctx context.Context) ([]*models.PerformanceApplication, error) {
	return s.repo.List(ctx)
}
