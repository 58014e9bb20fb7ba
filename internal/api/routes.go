package api

import (
	"devconnector/internal/api/handlers"
	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services, gatherer prometheus.Gatherer) {
	// Global middleware
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.Recovery(services.GetLogger()))
	router.Use(middlewares.Metrics(services.GetMetrics()))
	router.Use(middlewares.CORS(services.GetConfig().API.CORS))
	router.Use(middlewares.Security())

	// System endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		setupUserRoutes(api, services)
		setupAuthRoutes(api, services)
		setupProfileRoutes(api, services)
	}
}

// setupUserRoutes configures registration
func setupUserRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	users := rg.Group("/users")
	{
		users.POST("", handlers.RegisterUser(services))
	}
}

// setupAuthRoutes configures login and the current-user lookup
func setupAuthRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	auth := rg.Group("/auth")
	{
		auth.GET("", middlewares.AuthRequired(services), handlers.GetAuthUser(services))
		auth.POST("", handlers.Login(services))
	}
}

// setupProfileRoutes configures public profile reads and gated mutations
func setupProfileRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	profile := rg.Group("/profile")
	{
		// Public
		profile.GET("", handlers.ListProfiles(services))
		profile.GET("/user/:user_id", handlers.GetProfileByUserID(services))

		authenticated := profile.Group("")
		authenticated.Use(middlewares.AuthRequired(services))
		{
			authenticated.GET("/me", handlers.GetMyProfile(services))
			authenticated.POST("", handlers.UpsertProfile(services))
			authenticated.DELETE("", handlers.DeleteAccount(services))

			authenticated.PUT("/experience", handlers.AddExperience(services))
			authenticated.DELETE("/experience/:exp_id", handlers.DeleteExperience(services))

			authenticated.PUT("/education", handlers.AddEducation(services))
			authenticated.DELETE("/education/:edu_id", handlers.DeleteEducation(services))
		}
	}
}
