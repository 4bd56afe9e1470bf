package api

import (
	"net/http"

	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/azpdscc/website-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FormsHandler serves the public form submission endpoints
type FormsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFormsHandler creates a new FormsHandler
func NewFormsHandler(services *service.Services, log zerolog.Logger) *FormsHandler {
	return &FormsHandler{
		services: services,
		log:      log.With().Str("handler", "forms").Logger(),
	}
}

// VendorApply handles POST /v1/vendors/apply
func (h *FormsHandler) VendorApply(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		Organization string `json:"organization"`
		Email        string `json:"email"`
		BoothType    string `json:"boothType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app := &models.VendorApplication{
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		BoothType:    req.BoothType,
	}
	if errs := validation.ValidateVendorApplication(app); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Vendor.Apply(c.Request.Context(), app)
	if err != nil {
		h.log.Error().Err(err).Msg("Vendor application failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// PerformanceApply handles POST /v1/performances/apply
func (h *FormsHandler) PerformanceApply(c *gin.Context) {
	var req struct {
		GroupName       string `json:"groupName"`
		Event           string `json:"event"`
		ContactName     string `json:"contactName"`
		Email           string `json:"email"`
		PerformanceType string `json:"performanceType"`
		AuditionLink    string `json:"auditionLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app := &models.PerformanceApplication{
		GroupName:       req.GroupName,
		Event:           req.Event,
		ContactName:     req.ContactName,
		Email:           req.Email,
		PerformanceType: req.PerformanceType,
		AuditionLink:    req.AuditionLink,
	}
	if errs := validation.ValidatePerformanceApplication(app); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created, err := h.services.Performance.Apply(c.Request.Context(), app)
	if err != nil {
		h.log.Error().Err(err).Msg("Performance application failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// Subscribe handles POST /v1/subscribe
func (h *FormsHandler) Subscribe(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		SMSConsent bool   `json:"smsConsent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub := &models.Subscriber{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		SMSConsent: req.SMSConsent,
	}
	if errs := validation.ValidateSubscriber(sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	result, err := h.services.Subscriber.Subscribe(c.Request.Context(), sub)
	if err != nil {
		h.log.Error().Err(err).Msg("Subscription failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Chat handles POST /v1/chat
func (h *FormsHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	out, err := h.services.Chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		h.log.Error().Err(err).Msg("Chat reply failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": out.Reply})
}
