package api

import (
	"errors"
	"net/http"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/azpdscc/website-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler serves the identity-token-guarded admin screens for
// events, sponsors, team members, and performance applications
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// CreateEvent handles POST /v1/admin/events
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateEvent(&event); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Event.Create(c.Request.Context(), &event)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateEvent handles PUT /v1/admin/events/:id
func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	event.ID = c.Param("id")

	if errs := validation.ValidateEvent(&event); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	err := h.services.Event.Update(c.Request.Context(), &event)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to update event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /v1/admin/events/:id
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	err := h.services.Event.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("event_id", c.Param("id")).Msg("Failed to delete event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

// GenerateEvent handles POST /v1/admin/events/generate, the flow that
// drafts event descriptions and persists the complete event
func (h *AdminHandler) GenerateEvent(c *gin.Context) {
	var req service.GenerateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and date are required"})
		return
	}

	event, err := h.services.Event.Generate(c.Request.Context(), &req)
	if errors.Is(err, service.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content generation is not configured"})
		return
	}
	var invalid *ai.ErrInvalidOutput
	if errors.As(err, &invalid) {
		h.log.Error().Err(err).Msg("Event generation returned invalid output")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Event generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// SocialPosts handles POST /v1/admin/events/:id/social-posts
func (h *AdminHandler) SocialPosts(c *gin.Context) {
	posts, err := h.services.Event.SocialPosts(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content generation is not configured"})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("event_id", c.Param("id")).Msg("Social post generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate social posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreateSponsor handles POST /v1/admin/sponsors
func (h *AdminHandler) CreateSponsor(c *gin.Context) {
	var sponsor models.Sponsor
	if err := c.ShouldBindJSON(&sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateSponsor(&sponsor); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Sponsor.Create(c.Request.Context(), &sponsor)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create sponsor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sponsor"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateSponsor handles PUT /v1/admin/sponsors/:id
func (h *AdminHandler) UpdateSponsor(c *gin.Context) {
	var sponsor models.Sponsor
	if err := c.ShouldBindJSON(&sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sponsor.ID = c.Param("id")

	if errs := validation.ValidateSponsor(&sponsor); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	err := h.services.Sponsor.Update(c.Request.Context(), &sponsor)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "sponsor not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("sponsor_id", sponsor.ID).Msg("Failed to update sponsor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sponsor"})
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

// DeleteSponsor handles DELETE /v1/admin/sponsors/:id
func (h *AdminHandler) DeleteSponsor(c *gin.Context) {
	err := h.services.Sponsor.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "sponsor not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("sponsor_id", c.Param("id")).Msg("Failed to delete sponsor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sponsor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

// CreateTeamMember handles POST /v1/admin/team
func (h *AdminHandler) CreateTeamMember(c *gin.Context) {
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if member.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"field": "name", "message": "name is required"}}})
		return
	}

	created, err := h.services.Team.Create(c.Request.Context(), &member)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team member"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateTeamMember handles PUT /v1/admin/team/:id
func (h *AdminHandler) UpdateTeamMember(c *gin.Context) {
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	member.ID = c.Param("id")

	err := h.services.Team.Update(c.Request.Context(), &member)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("member_id", member.ID).Msg("Failed to update team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /v1/admin/team/:id
func (h *AdminHandler) DeleteTeamMember(c *gin.Context) {
	err := h.services.Team.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("member_id", c.Param("id")).Msg("Failed to delete team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

// ListPerformances handles GET /v1/admin/performances
func (h *AdminHandler) ListPerformances(c *gin.Context) {
	apps, err := h.services.Performance.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list performance applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
