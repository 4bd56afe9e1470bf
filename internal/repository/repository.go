package repository

import (
	"context"
	"time"

	"github.com/azpdscc/website-api/internal/database"
	"github.com/azpdscc/website-api/internal/models"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*models.Event, error)
}

// BlogRepository defines the interface for blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error)
}

// ScheduledPostRepository defines the interface for scheduled blog post
// data operations. Claim removes a due entry in a single statement so
// that concurrent processing passes cannot both publish it.
type ScheduledPostRepository interface {
	Create(ctx context.Context, post *models.ScheduledBlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.ScheduledBlogPost, error)
	List(ctx context.Context) ([]*models.ScheduledBlogPost, error)
	ListDue(ctx context.Context, today string) ([]*models.ScheduledBlogPost, error)
	Claim(ctx context.Context, id string) (bool, error)
}

// SponsorRepository defines the interface for sponsor data operations
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	Update(ctx context.Context, sponsor *models.Sponsor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Sponsor, error)
	List(ctx context.Context) ([]*models.Sponsor, error)
}

// TeamRepository defines the interface for team member data operations
type TeamRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	List(ctx context.Context) ([]*models.TeamMember, error)
}

// VendorRepository defines the interface for vendor application data
// operations. CheckIn performs the pending-to-checkedIn transition as a
// single guarded update; it reports false when no row transitioned.
type VendorRepository interface {
	Create(ctx context.Context, app *models.VendorApplication) error
	GetByID(ctx context.Context, id string) (*models.VendorApplication, error)
	List(ctx context.Context) ([]*models.VendorApplication, error)
	CheckIn(ctx context.Context, id string, at time.Time) (bool, error)
}

// SubscriberRepository defines the interface for newsletter subscriber
// data operations. Upsert reports whether a new record was created.
type SubscriberRepository interface {
	Upsert(ctx context.Context, sub *models.Subscriber) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	IsSubscribed(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PerformanceRepository defines the interface for performance
// application data operations
type PerformanceRepository interface {
	Create(ctx context.Context, app *models.PerformanceApplication) error
	List(ctx context.Context) ([]*models.PerformanceApplication, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Event       EventRepository
	Blog        BlogRepository
	Scheduled   ScheduledPostRepository
	Sponsor     SponsorRepository
	Team        TeamRepository
	Vendor      VendorRepository
	Subscriber  SubscriberRepository
	Performance PerformanceRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Event:       NewEventRepo(db),
		Blog:        NewBlogRepo(db),
		Scheduled:   NewScheduledPostRepo(db),
		Sponsor:     NewSponsorRepo(db),
		Team:        NewTeamRepo(db),
		Vendor:      NewVendorRepo(db),
		Subscriber:  NewSubscriberRepo(db),
		Performance: NewPerformanceRepo(db),
	}
}
