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
	qrcode "github.com/skip2/go-qrcode"
)

// vendorService is the concrete implementation of VendorService
type vendorService struct {
	repo repository.VendorRepository
	mail mailer.Mailer
	cfg  *config.Config
	log  zerolog.Logger
}

// newVendorService creates a new VendorService
func newVendorService(repo repository.VendorRepository, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *vendorService {
	return &vendorService{
		repo: repo,
		mail: mail,
		cfg:  cfg,
		log:  log.With().Str("service", "vendor").Logger(),
	}
}

// Apply registers a vendor booth application. The confirmation email is
// best-effort: a provider failure is logged but does not fail the
// application itself.
func (s *vendorService) Apply(ctx context.Context, app *models.VendorApplication) (*models.VendorApplication, error) {
	app.ID = uuid.New().String()
	app.CheckInStatus = models.CheckInStatusPending
	app.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("booth_type", app.BoothType).Msg("Vendor application received")

	if s.mail != nil && app.Email != "" {
		msg := mailer.Message{
			To:      app.Email,
			Subject: "Your AZPDSCC vendor application",
			HTML: fmt.Sprintf(
				"<p>Hello %s,</p><p>We received your %s booth application for <b>%s</b>. "+
					"Bring your check-in pass to the event entrance; our volunteers will scan you in.</p>",
				app.Name, app.BoothType, app.Organization,
			),
		}
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Warn().Err(err).Str("application_id", app.ID).Msg("Vendor confirmation email failed")
		}
	}

	return app, nil
}

// List returns all vendor applications for the volunteer roster view
func (s *vendorService) List(ctx context.Context) ([]*models.VendorApplication, error) {
	return s.repo.List(ctx)
}

// CheckIn marks an application as checked in. The transition is one-way
// and race-safe: the guarded update transitions at most one pending row,
// and a second scan of the same pass reports AlreadyCheckedIn instead of
// erroring or rewriting the timestamp.
func (s *vendorService) CheckIn(ctx context.Context, id string) (*CheckInResult, error) {
	checked, err := s.repo.CheckIn(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	if checked {
		s.log.Info().Str("application_id", id).Msg("Vendor checked in")
	}

	return &CheckInResult{
		Application:      app,
		AlreadyCheckedIn: !checked,
	}, nil
}

// CheckInPassPNG renders the QR code volunteers scan at the entrance.
// The code carries only the application id.
func (s *vendorService) CheckInPassPNG(ctx context.Context, id string) ([]byte, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}

	png, err := qrcode.Encode(app.ID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode check-in pass: %w", err)
	}
	return png, nil
}
