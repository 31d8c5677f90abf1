package httpserver

import (
	"github.com/devshowcase/api/internal/core/domain/user"
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/verify-email", s.verifyEmail)
	auth.POST("/login", s.login)
	auth.POST("/verify-2fa", s.verify2FA)
	auth.POST("/resend-verification-email", s.resendVerificationEmail)
	auth.POST("/resend-2fa-code", s.resend2FACode)

	// Public project discovery
	projects := api.Group("/projects")
	projects.GET("", s.listProjects)
	projects.GET("/trending", s.trendingProjects)
	projects.GET("/latest", s.latestProjects)
	projects.GET("/search", s.searchProjects)
	projects.GET("/category/:category", s.projectsByCategory)
	projects.GET("/:id", s.getPublicProject)
	projects.GET("/:id/upvotes", s.listProjectUpvotes)

	// Public profiles
	api.GET("/users/:username", s.getPublicProfile)

	protected := api.Group("")
	protected.Use(s.middleware.JWT.RequireJWT())

	me := protected.Group("/me")
	me.GET("", s.getOwnProfile)
	me.PUT("", s.updateOwnProfile)
	me.DELETE("", s.deleteOwnAccount)
	me.GET("/projects", s.listOwnProjects)
	me.GET("/projects/:id", s.getOwnProject)

	owned := protected.Group("/projects")
	owned.POST("", s.createProject)
	owned.PUT("/:id", s.updateProject)
	owned.DELETE("/:id", s.deleteProject)
	owned.PUT("/:id/publish", s.publishProject)
	owned.PUT("/:id/unpublish", s.unpublishProject)
	owned.POST("/:id/upvote", s.upvoteProject)
	owned.DELETE("/:id/upvote", s.removeUpvote)

	admin := protected.Group("/admin")
	admin.Use(s.middleware.JWT.RequireRole(user.RoleAdmin))
	admin.GET("/users", s.adminListUsers)
	admin.GET("/users/:id", s.adminGetUser)
	admin.PUT("/users/:id/role", s.adminUpdateUserRole)
	admin.DELETE("/users/:id", s.adminDeleteUser)
	admin.GET("/projects", s.adminListProjects)
	admin.GET("/users/:id/projects", s.adminProjectsByUser)
	admin.DELETE("/projects/:id", s.adminDeleteProject)
	admin.PUT("/projects/:id/moderate", s.adminModerateProject)
	admin.GET("/stats", s.adminStats)
	admin.GET("/trending-tech", s.adminTrendingTech)
}
