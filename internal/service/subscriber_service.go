package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/rs/zerolog"
)

// subscriberService is the concrete implementation of SubscriberService
type subscriberService struct {
	repo     repository.SubscriberRepository
	aiClient ai.Client
	mail     mailer.Mailer
	cfg      *config.Config
	log      zerolog.Logger
}

// newSubscriberService creates a new SubscriberService
func newSubscriberService(repo repository.SubscriberRepository, aiClient ai.Client, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *subscriberService {
	return &subscriberService{
		repo:     repo,
		aiClient: aiClient,
		mail:     mail,
		cfg:      cfg,
		log:      log.With().Str("service", "subscriber").Logger(),
	}
}

// Subscribe adds a newsletter subscriber and sends the welcome email.
// The email address is the primary key, so subscribing twice neither
// creates a second record nor sends a second welcome email. Email
// failures never unwind the subscription: the record stays, and the
// result carries the email error for the caller to surface.
func (s *subscriberService) Subscribe(ctx context.Context, sub *models.Subscriber) (*SubscribeResult, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	sub.SubscribedAt = time.Now()

	created, err := s.repo.Upsert(ctx, sub)
	if err != nil {
		return nil, err
	}

	result := &SubscribeResult{Subscriber: sub, AlreadySubscribed: !created}
	if !created {
		return result, nil
	}

	s.log.Info().Str("email", sub.Email).Bool("sms_consent", sub.SMSConsent).Msg("Subscriber added")

	if s.mail == nil {
		result.EmailError = mailer.ErrNotConfigured.Error()
		return result, nil
	}

	welcome := ai.GenerateWelcomeEmail(ctx, s.aiClient, ai.WelcomeEmailInput{Name: sub.Name})
	if welcome.Fallback {
		s.log.Warn().Str("email", sub.Email).Msg("Welcome email using fallback copy")
	}

	if err := s.mail.Send(ctx, mailer.Message{
		To:      sub.Email,
		Subject: welcome.Subject,
		HTML:    welcome.Body,
	}); err != nil {
		s.log.Error().Err(err).Str("email", sub.Email).Msg("Welcome email failed")
		result.EmailError = err.Error()
	} else {
		result.WelcomeEmailSent = true
	}

	// The admin notification is strictly best-effort; its failure does
	// not even show up in the result.
	if err := s.mail.Send(ctx, mailer.Message{
		To:      s.cfg.Email.AdminEmail,
		Subject: "New newsletter subscriber",
		Text:    fmt.Sprintf("%s <%s> subscribed to the newsletter.", sub.Name, sub.Email),
	}); err != nil {
		s.log.Warn().Err(err).Msg("Admin notification email failed")
	}

	return result, nil
}

// IsSubscribed reports whether an email already has a subscription
func (s *subscriberService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	return s.repo.IsSubscribed(ctx, strings.ToLower(strings.TrimSpace(email)))
}
