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

// weeklyTopics rotate by ISO week number so the cron endpoint produces
// a different post each week without any stored state
var weeklyTopics = []string{
	"The history and meaning of Vaisakhi celebrations in Arizona",
	"A guide to Punjabi street food favorites at our festival booths",
	"How community volunteering strengthens the Phoenix Desi community",
	"Bhangra and Giddha: the dances that bring our events to life",
	"Celebrating Diwali across generations in the valley",
	"Why sponsor a community festival: stories from our partners",
	"Getting started as a vendor at AZPDSCC events",
	"The role of seva in Sikh community life",
}

const weeklyPostAuthor = "AZPDSCC Team"

// blogService is the concrete implementation of BlogService
type blogService struct {
	repos    *repository.Repositories
	aiClient ai.Client
	log      zerolog.Logger
}

// newBlogService creates a new BlogService
func newBlogService(repos *repository.Repositories, aiClient ai.Client, log zerolog.Logger) *blogService {
	return &blogService{
		repos:    repos,
		aiClient: aiClient,
		log:      log.With().Str("service", "blog").Logger(),
	}
}

// ListPublished returns the posts shown on the public blog index
func (s *blogService) ListPublished(ctx context.Context) ([]*models.BlogPost, error) {
	return s.repos.Blog.List(ctx, models.BlogStatusPublished)
}

// List returns posts with an optional status filter
func (s *blogService) List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error) {
	return s.repos.Blog.List(ctx, status)
}

// GetBySlug returns a single post or ErrNotFound
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repos.Blog.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create persists a post coming through the admin API
func (s *blogService) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Slug == "" {
		slug, err := s.uniqueSlug(ctx, validation.Slugify(post.Title))
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	if post.Status == "" {
		post.Status = models.BlogStatusDraft
	}
	post.CreatedAt = time.Now()

	if err := s.repos.Blog.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("slug", post.Slug).Str("status", string(post.Status)).Msg("Blog post created")
	return post, nil
}

// Update rewrites an existing post
func (s *blogService) Update(ctx context.Context, post *models.BlogPost) error {
	existing, err := s.repos.Blog.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Blog.Update(ctx, post)
}

// Delete removes a post permanently
func (s *blogService) Delete(ctx context.Context, id string) error {
	existing, err := s.repos.Blog.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Blog.Delete(ctx, id)
}

// GenerateWeeklyPost creates one automated draft post from the rotating
// topic list. Triggered by the cron endpoint.
func (s *blogService) GenerateWeeklyPost(ctx context.Context, now time.Time) (*models.BlogPost, error) {
	if s.aiClient == nil {
		return nil, ErrNotConfigured
	}

	_, week := now.ISOWeek()
	topic := weeklyTopics[week%len(weeklyTopics)]

	out, err := ai.GenerateBlogPost(ctx, s.aiClient, ai.BlogPostInput{
		Topic:  topic,
		Author: weeklyPostAuthor,
	})
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, validation.Slugify(out.Title))
	if err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     out.Title,
		Author:    weeklyPostAuthor,
		Date:      now.Format("2006-01-02"),
		Excerpt:   out.Excerpt,
		Content:   out.Content,
		Status:    models.BlogStatusDraft,
		CreatedAt: now,
	}

	if err := s.repos.Blog.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("topic", topic).Msg("Weekly post generated")
	return post, nil
}

// ProcessScheduledPosts publishes every scheduled post whose date has
// passed. Each entry is claimed with a single conditional delete before
// any generation happens, so two concurrent passes cannot publish the
// same topic twice. Per-entry failures are logged and skipped; the pass
// itself only fails when the due listing cannot be read.
func (s *blogService) ProcessScheduledPosts(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repos.Scheduled.ListDue(ctx, now.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("list due scheduled posts: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	if s.aiClient == nil {
		// Leave the entries in place; they publish once the model
		// provider is configured.
		s.log.Warn().Int("due", len(due)).Msg("Scheduled posts due but model provider not configured")
		return 0, nil
	}

	processed := 0
	for _, entry := range due {
		claimed, err := s.repos.Scheduled.Claim(ctx, entry.ID)
		if err != nil {
			s.log.Error().Err(err).Str("scheduled_id", entry.ID).Msg("Failed to claim scheduled post")
			continue
		}
		if !claimed {
			// Another pass won this entry.
			continue
		}

		if err := s.publishScheduled(ctx, entry, now); err != nil {
			s.log.Error().Err(err).Str("scheduled_id", entry.ID).Str("topic", entry.Topic).Msg("Failed to publish scheduled post")
			continue
		}
		processed++
	}

	if processed > 0 {
		s.log.Info().Int("published", processed).Msg("Scheduled posts processed")
	}
	return processed, nil
}

func (s *blogService) publishScheduled(ctx context.Context, entry *models.ScheduledBlogPost, now time.Time) error {
	author := entry.Author
	if author == "" {
		author = weeklyPostAuthor
	}

	out, err := ai.GenerateBlogPost(ctx, s.aiClient, ai.BlogPostInput{
		Topic:  entry.Topic,
		Author: author,
	})
	if err != nil {
		return err
	}

	slug, err := s.uniqueSlug(ctx, validation.Slugify(out.Title))
	if err != nil {
		return err
	}

	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     out.Title,
		Author:    author,
		Date:      entry.PublishDate,
		Excerpt:   out.Excerpt,
		Content:   out.Content,
		Image:     entry.Image,
		Status:    models.BlogStatusPublished,
		CreatedAt: now,
	}

	return s.repos.Blog.Create(ctx, post)
}

// CreateScheduled stores an admin-entered topic for later publication
func (s *blogService) CreateScheduled(ctx context.Context, post *models.ScheduledBlogPost) (*models.ScheduledBlogPost, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	if err := s.repos.Scheduled.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("scheduled_id", post.ID).Str("publish_date", post.PublishDate).Msg("Scheduled post created")
	return post, nil
}

// ListScheduled returns all pending scheduled posts
func (s *blogService) ListScheduled(ctx context.Context) ([]*models.ScheduledBlogPost, error) {
	return s.repos.Scheduled.List(ctx)
}

// DeleteScheduled removes a scheduled post before it publishes
func (s *blogService) DeleteScheduled(ctx context.Context, id string) error {
	existing, err := s.repos.Scheduled.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Scheduled.Delete(ctx, id)
}

func (s *blogService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "post"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.repos.Blog.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
