package service

import (
	"context"
	"fmt"
	"time"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/azpdscc/website-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GenerateEventRequest is the admin input to the event generation flow
type GenerateEventRequest struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// eventService is the concrete implementation of EventService
type eventService struct {
	repos    *repository.Repositories
	aiClient ai.Client
	log      zerolog.Logger
}

// newEventService creates a new EventService
func newEventService(repos *repository.Repositories, aiClient ai.Client, log zerolog.Logger) *eventService {
	return &eventService{
		repos:    repos,
		aiClient: aiClient,
		log:      log.With().Str("service", "event").Logger(),
	}
}

// List returns all events ordered by date
func (s *eventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repos.Event.List(ctx)
}

// GetBySlug returns a single event or ErrNotFound
func (s *eventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event, err := s.repos.Event.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create persists a manually edited event
func (s *eventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Slug == "" {
		slug, err := s.uniqueSlug(ctx, validation.Slugify(event.Name))
		if err != nil {
			return nil, err
		}
		event.Slug = slug
	}
	event.CreatedAt = time.Now()

	if err := s.repos.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("slug", event.Slug).Msg("Event created")
	return event, nil
}

// Update rewrites an existing event
func (s *eventService) Update(ctx context.Context, event *models.Event) error {
	existing, err := s.repos.Event.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Event.Update(ctx, event)
}

// Delete removes an event permanently
func (s *eventService) Delete(ctx context.Context, id string) error {
	existing, err := s.repos.Event.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Event.Delete(ctx, id)
}

// Generate runs the event description flow and persists the resulting
// event. The whole operation either yields a complete event or an
// error; no partially generated record is ever stored.
func (s *eventService) Generate(ctx context.Context, req *GenerateEventRequest) (*models.Event, error) {
	if s.aiClient == nil {
		return nil, ErrNotConfigured
	}

	category := req.Category
	if category == "" {
		category = "Community"
	}

	out, err := ai.GenerateEventDescriptions(ctx, s.aiClient, ai.EventDescriptionsInput{
		Name:     req.Name,
		Date:     req.Date,
		Location: req.Location,
		Category: category,
	})
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, validation.Slugify(req.Name))
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:               uuid.New().String(),
		Slug:             slug,
		Name:             req.Name,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Category:         category,
		ShortDescription: out.ShortDescription,
		FullDescription:  out.FullDescription,
		Image:            req.Image,
		CreatedAt:        time.Now(),
	}

	if err := s.repos.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("slug", event.Slug).Msg("Event generated")
	return event, nil
}

// SocialPosts runs the social media flow for an existing event
func (s *eventService) SocialPosts(ctx context.Context, id string) (*ai.SocialPostsOutput, error) {
	if s.aiClient == nil {
		return nil, ErrNotConfigured
	}

	event, err := s.repos.Event.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	return ai.GenerateSocialPosts(ctx, s.aiClient, ai.SocialPostsInput{
		EventName: event.Name,
		Date:      event.Date,
		Location:  event.Location,
		Link:      "https://azpdscc.org/events/" + event.Slug,
	})
}

// uniqueSlug suffixes the base slug until it is free in the events
// collection. Uniqueness is by convention, not a database constraint
// race guard; collisions within one admin session are the realistic case.
func (s *eventService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "event"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.repos.Event.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
