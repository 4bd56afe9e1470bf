package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/azpdscc/website-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CronHandler serves the scheduler-triggered endpoints. The platform
// scheduler calls these over HTTP; there is no in-process job runner.
type CronHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(services *service.Services, log zerolog.Logger) *CronHandler {
	return &CronHandler{
		services: services,
		log:      log.With().Str("handler", "cron").Logger(),
	}
}

// WeeklyPost handles GET /v1/cron/weekly-post. Failures are reported in
// the response body; the process itself never dies on a bad generation.
func (h *CronHandler) WeeklyPost(c *gin.Context) {
	post, err := h.services.Blog.GenerateWeeklyPost(c.Request.Context(), time.Now())
	if errors.Is(err, service.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "content generation is not configured"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Weekly post generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": post.ID, "slug": post.Slug})
}
