package service

import (
	"context"
	"errors"
	"time"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ErrNotConfigured is returned when an operation needs a provider
// credential that is absent from the environment
var ErrNotConfigured = errors.New("service not configured")

// EventService defines the interface for event operations
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	Generate(ctx context.Context, req *GenerateEventRequest) (*models.Event, error)
	SocialPosts(ctx context.Context, id string) (*ai.SocialPostsOutput, error)
}

// BlogService defines the interface for blog and scheduled post operations
type BlogService interface {
	ListPublished(ctx context.Context) ([]*models.BlogPost, error)
	List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error

	GenerateWeeklyPost(ctx context.Context, now time.Time) (*models.BlogPost, error)
	ProcessScheduledPosts(ctx context.Context, now time.Time) (int, error)
	CreateScheduled(ctx context.Context, post *models.ScheduledBlogPost) (*models.ScheduledBlogPost, error)
	ListScheduled(ctx context.Context) ([]*models.ScheduledBlogPost, error)
	DeleteScheduled(ctx context.Context, id string) error
}

// SponsorService defines the interface for sponsor operations
type SponsorService interface {
	List(ctx context.Context) ([]*models.Sponsor, error)
	Create(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	Delete(ctx context.Context, id string) error
}

// TeamService defines the interface for team member operations
type TeamService interface {
	List(ctx context.Context) ([]*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// CheckInResult reports the outcome of a vendor check-in
type CheckInResult struct {
	Application      *models.VendorApplication `json:"application"`
	AlreadyCheckedIn bool                      `json:"alreadyCheckedIn"`
}

// VendorService defines the interface for vendor application operations
type VendorService interface {
	Apply(ctx context.Context, app *models.VendorApplication) (*models.VendorApplication, error)
	List(ctx context.Context) ([]*models.VendorApplication, error)
	CheckIn(ctx context.Context, id string) (*CheckInResult, error)
	CheckInPassPNG(ctx context.Context, id string) ([]byte, error)
}

// SubscribeResult reports the outcome of a newsletter subscription
type SubscribeResult struct {
	Subscriber        *models.Subscriber `json:"subscriber"`
	AlreadySubscribed bool               `json:"alreadySubscribed"`
	WelcomeEmailSent  bool               `json:"welcomeEmailSent"`
	EmailError        string             `json:"emailError,omitempty"`
}

// SubscriberService defines the interface for newsletter operations
type SubscriberService interface {
	Subscribe(ctx context.Context, sub *models.Subscriber) (*SubscribeResult, error)
	IsSubscribed(ctx context.Context, email string) (bool, error)
}

// PerformanceService defines the interface for performance applications
type PerformanceService interface {
	Apply(ctx context.Context, app *models.PerformanceApplication) (*models.PerformanceApplication, error)
	List(ctx context.Context) ([]*models.PerformanceApplication, error)
}

// ChatService defines the interface for the website chatbot
type ChatService interface {
	Reply(ctx context.Context, message string) (*ai.ChatOutput, error)
}

// Services holds all service interfaces
type Services struct {
	Event       EventService
	Blog        BlogService
	Sponsor     SponsorService
	Team        TeamService
	Vendor      VendorService
	Subscriber  SubscriberService
	Performance PerformanceService
	Chat        ChatService
}

// NewServices creates all services. The AI client and mailer may be nil
// when their credentials are absent; every dependent operation then
// degrades to an explicit not-configured or fallback result.
func NewServices(repos *repository.Repositories, cfg *config.Config, aiClient ai.Client, mail mailer.Mailer, log zerolog.Logger) *Services {
	return &Services{
		Event:       newEventService(repos, aiClient, log),
		Blog:        newBlogService(repos, aiClient, log),
		Sponsor:     newSponsorService(repos.Sponsor, log),
		Team:        newTeamService(repos.Team, log),
		Vendor:      newVendorService(repos.Vendor, mail, cfg, log),
		Subscriber:  newSubscriberService(repos.Subscriber, aiClient, mail, cfg, log),
		Performance: newPerformanceService(repos.Performance, mail, cfg, log),
		Chat:        newChatService(aiClient, log),
	}
}
