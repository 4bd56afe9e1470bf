package api

import (
	"errors"
	"net/http"

	"github.com/azpdscc/website-api/internal/auth"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// VolunteerHandler serves the volunteer login and the check-in surface
type VolunteerHandler struct {
	services *service.Services
	cfg      *config.Config
	sessions auth.SessionStore
	log      zerolog.Logger
}

// NewVolunteerHandler creates a new VolunteerHandler
func NewVolunteerHandler(services *service.Services, cfg *config.Config, sessions auth.SessionStore, log zerolog.Logger) *VolunteerHandler {
	return &VolunteerHandler{
		services: services,
		cfg:      cfg,
		sessions: sessions,
		log:      log.With().Str("handler", "volunteer").Logger(),
	}
}

// Login handles POST /v1/volunteer/login
func (h *VolunteerHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	session, err := auth.VolunteerLogin(c.Request.Context(), &h.cfg.Auth, h.sessions, req.Username, req.Password)
	if errors.Is(err, auth.ErrLoginFailed) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Volunteer login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListApplications handles GET /v1/vendors
func (h *VolunteerHandler) ListApplications(c *gin.Context) {
	apps, err := h.services.Vendor.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list vendor applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// CheckIn handles POST /v1/vendors/:id/checkin
func (h *VolunteerHandler) CheckIn(c *gin.Context) {
	result, err := h.services.Vendor.CheckIn(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("application_id", c.Param("id")).Msg("Check-in failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check-in failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckInPass handles GET /v1/vendors/:id/pass, returning the QR code
// PNG a vendor presents at the entrance
func (h *VolunteerHandler) CheckInPass(c *gin.Context) {
	png, err := h.services.Vendor.CheckInPassPNG(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("application_id", c.Param("id")).Msg("Pass generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate pass"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
