package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/azpdscc/website-api/internal/auth"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, sessions auth.SessionStore, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Unsupported methods on a known route answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "method not allowed"})
	})

	// Handlers
	publicHandler := NewPublicHandler(services, log)
	formsHandler := NewFormsHandler(services, log)
	volunteerHandler := NewVolunteerHandler(services, cfg, sessions, log)
	adminBlogHandler := NewAdminBlogHandler(services, log)
	adminHandler := NewAdminHandler(services, log)
	cronHandler := NewCronHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public content
		v1.GET("/events", publicHandler.ListEvents)
		v1.GET("/events/:slug", publicHandler.GetEvent)
		v1.GET("/blog", publicHandler.ListBlog)
		v1.GET("/blog/:slug", publicHandler.GetBlogPost)
		v1.GET("/sponsors", publicHandler.ListSponsors)
		v1.GET("/team", publicHandler.ListTeam)

		// Public forms
		v1.POST("/vendors/apply", formsHandler.VendorApply)
		v1.POST("/performances/apply", formsHandler.PerformanceApply)
		v1.POST("/subscribe", formsHandler.Subscribe)
		v1.POST("/chat", formsHandler.Chat)

		// Volunteer check-in surface
		v1.POST("/volunteer/login", volunteerHandler.Login)
		vendors := v1.Group("/vendors")
		vendors.Use(sessionMiddleware(sessions, auth.RoleVolunteer))
		{
			vendors.GET("", volunteerHandler.ListApplications)
			vendors.POST("/:id/checkin", volunteerHandler.CheckIn)
			vendors.GET("/:id/pass", volunteerHandler.CheckInPass)
		}

		// Admin blog API, authenticated by shared secret header
		adminBlog := v1.Group("/admin/blog")
		adminBlog.Use(adminKeyMiddleware(cfg))
		{
			adminBlog.POST("", adminBlogHandler.CreatePost)
			adminBlog.PUT("/:id", adminBlogHandler.UpdatePost)
			adminBlog.DELETE("/:id", adminBlogHandler.DeletePost)
			adminBlog.GET("/scheduled", adminBlogHandler.ListScheduled)
			adminBlog.POST("/scheduled", adminBlogHandler.CreateScheduled)
			adminBlog.DELETE("/scheduled/:id", adminBlogHandler.DeleteScheduled)
		}

		// Admin content screens, authenticated by identity token
		admin := v1.Group("/admin")
		admin.Use(jwtMiddleware(cfg, auth.RoleAdmin))
		{
			admin.POST("/events", adminHandler.CreateEvent)
			admin.PUT("/events/:id", adminHandler.UpdateEvent)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.POST("/events/generate", adminHandler.GenerateEvent)
			admin.POST("/events/:id/social-posts", adminHandler.SocialPosts)

			admin.POST("/sponsors", adminHandler.CreateSponsor)
			admin.PUT("/sponsors/:id", adminHandler.UpdateSponsor)
			admin.DELETE("/sponsors/:id", adminHandler.DeleteSponsor)

			admin.POST("/team", adminHandler.CreateTeamMember)
			admin.PUT("/team/:id", adminHandler.UpdateTeamMember)
			admin.DELETE("/team/:id", adminHandler.DeleteTeamMember)

			admin.GET("/performances", adminHandler.ListPerformances)
		}

		// Cron trigger for the weekly automated post
		v1.GET("/cron/weekly-post", cronSecretMiddleware(cfg), cronHandler.WeeklyPost)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "azpdscc-website-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-admin-api-key, x-session-token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// adminKeyMiddleware guards the admin blog API with the shared secret
// header. An unset ADMIN_API_KEY disables the surface entirely rather
// than letting empty headers match an empty secret.
func adminKeyMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-api-key")
		if cfg.Auth.AdminAPIKey == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Auth.AdminAPIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Next()
	}
}

// cronSecretMiddleware checks the secret query parameter on the cron
// trigger endpoint
func cronSecretMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.Query("secret")
		if cfg.Auth.CronSecret == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.Auth.CronSecret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Next()
	}
}

// jwtMiddleware verifies the externally issued bearer token and the
// required role before admin mutations proceed
func jwtMiddleware(cfg *config.Config, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Auth.JWTSecret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin authentication is not configured"})
			return
		}

		tokenString, err := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := auth.ValidateToken(cfg.Auth.JWTSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

// sessionMiddleware guards the volunteer check-in surface with the
// session token minted at login
func sessionMiddleware(sessions auth.SessionStore, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-session-token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}

		role, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Next()
	}
}
