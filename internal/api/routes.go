package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-quest/backend/internal/middleware"
	"github.com/pageza/calorie-quest/backend/internal/service"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Profile      service.IProfileService
	Meals        service.IMealService
	Measurements service.IMeasurementService
	Gamification service.IGamificationService
	Progress     service.IProgressService
	Quest        service.IQuestService
	Images       service.IImageService
	Auth         service.IAuthService

	// DBPing backs the health check. Optional.
	DBPing Pinger
	// RecomputeLimit rate limits progress recomputation. Optional.
	RecomputeLimit gin.HandlerFunc
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, svc Services) {
	health := NewHealthHandler(svc.DBPing)
	router.GET("/health", health.Health)
	router.GET("/api/health", health.Health)

	api := router.Group("/api")
	if svc.Auth != nil {
		NewAuthHandler(svc.Auth).RegisterRoutes(api)
	}

	protected := api.Group("")
	if svc.Auth != nil && svc.Auth.Enabled() {
		protected.Use(middleware.AuthMiddleware(svc.Auth))
	}

	NewProfileHandler(svc.Profile).RegisterRoutes(protected)
	NewDayHandler(svc.Meals).RegisterRoutes(protected)
	NewProgressHandler(svc.Measurements, svc.Gamification).RegisterRoutes(protected)
	NewAIHandler(svc.Progress, svc.Quest, svc.RecomputeLimit).RegisterRoutes(protected)
	if svc.Images != nil {
		NewUploadHandler(svc.Images).RegisterRoutes(protected)
	}
}
