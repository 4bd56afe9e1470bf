package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/azpdscc/website-api/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when RESEND_API_KEY is absent. Callers
// show "email service not configured" instead of crashing.
var ErrNotConfigured = errors.New("mailer: email provider is not configured")

// Message is a single transactional email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends one transactional email per call. No queueing, no retry;
// a provider error propagates to the caller, which decides whether the
// surrounding operation still succeeds.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// resendMailer is the Resend implementation of Mailer
type resendMailer struct {
	client *resend.Client
	from   string
	log    zerolog.Logger
}

// New creates a Mailer from configuration, or ErrNotConfigured when the
// provider credential is missing
func New(cfg *config.EmailConfig, log zerolog.Logger) (Mailer, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	return &resendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.From,
		log:    log.With().Str("component", "mailer").Logger(),
	}, nil
}

// Send dispatches the message exactly once
func (m *resendMailer) Send(ctx context.Context, msg Message) error {
	from := msg.From
	if from == "" {
		from = m.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.log.Info().
		Str("email_id", sent.Id).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("Email sent")

	return nil
}
