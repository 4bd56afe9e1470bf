package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// subscriberRepo is the concrete implementation of SubscriberRepository
type subscriberRepo struct {
	db *database.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *database.DB) SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Upsert inserts a subscriber keyed by email and reports whether a new
// record was created. An existing subscription is left untouched, so
// subscribing twice cannot create a second record or reset the
// original subscription time.
func (r *subscriberRepo) Upsert(ctx context.Context, sub *models.Subscriber) (bool, error) {
	query := `
		INSERT INTO subscribers (email, name, phone, sms_consent, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		strings.ToLower(sub.Email), sub.Name, sub.Phone, sub.SMSConsent, sub.SubscribedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetByEmail retrieves a subscriber by email
func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	query := `SELECT email, name, phone, sms_consent, subscribed_at FROM subscribers WHERE email = $1`

	var sub models.Subscriber
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).Scan(
		&sub.Email, &sub.Name, &sub.Phone, &sub.SMSConsent, &sub.SubscribedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// IsSubscribed checks whether an email address already has a subscription
func (r *subscriberRepo) IsSubscribed(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)",
		strings.ToLower(email),
	).Scan(&exists)
	return exists, err
}

// Count returns the total number of subscribers
func (r *subscriberRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers").Scan(&count)
	return count, err
}
