package api

import (
	"errors"
	"net/http"

	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/azpdscc/website-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminBlogHandler serves the shared-secret blog admin API. Error
// bodies use a "message" field; the middleware has already answered
// 401 for bad credentials and 405 for unsupported methods.
type AdminBlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminBlogHandler creates a new AdminBlogHandler
func NewAdminBlogHandler(services *service.Services, log zerolog.Logger) *AdminBlogHandler {
	return &AdminBlogHandler{
		services: services,
		log:      log.With().Str("handler", "admin_blog").Logger(),
	}
}

// CreatePost handles POST /v1/admin/blog
func (h *AdminBlogHandler) CreatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if post.Slug == "" && post.Title != "" {
		post.Slug = validation.Slugify(post.Title)
	}
	if errs := validation.ValidateBlogPost(&post); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	created, err := h.services.Blog.Create(c.Request.Context(), &post)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "slug": created.Slug})
}

// UpdatePost handles PUT /v1/admin/blog/:id
func (h *AdminBlogHandler) UpdatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	post.ID = c.Param("id")

	if errs := validation.ValidateBlogPost(&post); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	err := h.services.Blog.Update(c.Request.Context(), &post)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("post_id", post.ID).Msg("Failed to update blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

// DeletePost handles DELETE /v1/admin/blog/:id
func (h *AdminBlogHandler) DeletePost(c *gin.Context) {
	err := h.services.Blog.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("post_id", c.Param("id")).Msg("Failed to delete blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

// ListScheduled handles GET /v1/admin/blog/scheduled
func (h *AdminBlogHandler) ListScheduled(c *gin.Context) {
	posts, err := h.services.Blog.ListScheduled(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list scheduled posts")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list scheduled posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduled": posts})
}

// CreateScheduled handles POST /v1/admin/blog/scheduled
func (h *AdminBlogHandler) CreateScheduled(c *gin.Context) {
	var post models.ScheduledBlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if errs := validation.ValidateScheduledPost(&post); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	created, err := h.services.Blog.CreateScheduled(c.Request.Context(), &post)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create scheduled post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create scheduled post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID})
}

// DeleteScheduled handles DELETE /v1/admin/blog/scheduled/:id
func (h *AdminBlogHandler) DeleteScheduled(c *gin.Context) {
	err := h.services.Blog.DeleteScheduled(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "scheduled post not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("scheduled_id", c.Param("id")).Msg("Failed to delete scheduled post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete scheduled post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}
