package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/azpdscc/website-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublicHandler serves the read-only content endpoints backing the
// marketing pages
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("handler", "public").Logger(),
	}
}

// ListEvents handles GET /v1/events
func (h *PublicHandler) ListEvents(c *gin.Context) {
	events, err := h.services.Event.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GetEvent handles GET /v1/events/:slug
func (h *PublicHandler) GetEvent(c *gin.Context) {
	event, err := h.services.Event.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListBlog handles GET /v1/blog. Before listing it opportunistically
// publishes any scheduled posts whose date has passed; a failure there
// degrades to serving the plain listing rather than failing the page.
func (h *PublicHandler) ListBlog(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.services.Blog.ProcessScheduledPosts(ctx, time.Now()); err != nil {
		h.log.Error().Err(err).Msg("Scheduled post processing failed during blog render")
	}

	posts, err := h.services.Blog.ListPublished(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list blog posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blog posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBlogPost handles GET /v1/blog/:slug
func (h *PublicHandler) GetBlogPost(c *gin.Context) {
	post, err := h.services.Blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get blog post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListSponsors handles GET /v1/sponsors
func (h *PublicHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.services.Sponsor.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list sponsors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sponsors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}

// ListTeam handles GET /v1/team
func (h *PublicHandler) ListTeam(c *gin.Context) {
	members, err := h.services.Team.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list team members")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list team members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": members})
}
