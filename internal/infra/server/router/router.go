// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/subtracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	subscriptionController *controller.SubscriptionController
	dashboardController    *controller.DashboardController
	categoryController     *controller.CategoryController
	notificationController *controller.NotificationController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	subscriptionController *controller.SubscriptionController,
	dashboardController *controller.DashboardController,
	categoryController *controller.CategoryController,
	notificationController *controller.NotificationController,
) *Router {
	return &Router{
		healthController:       healthController,
		subscriptionController: subscriptionController,
		dashboardController:    dashboardController,
		categoryController:     categoryController,
		notificationController: notificationController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.subscriptionController != nil {
			subscriptions := v1.Group("/subscriptions")
			{
				subscriptions.GET("", r.subscriptionController.List)
				subscriptions.POST("", r.subscriptionController.Create)
				subscriptions.PUT("/:id", r.subscriptionController.Update)
				subscriptions.DELETE("/:id", r.subscriptionController.Delete)
				subscriptions.POST("/:id/archive", r.subscriptionController.Archive)
				subscriptions.POST("/:id/logo", r.subscriptionController.FixLogo)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/overview", r.dashboardController.Overview)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.DELETE("/:name", r.categoryController.Delete)
			}
		}

		if r.notificationController != nil {
			notifications := v1.Group("/notifications")
			{
				notifications.GET("/permission", r.notificationController.GetPermission)
				notifications.PUT("/permission", r.notificationController.SetPermission)
				notifications.POST("/check", r.notificationController.CheckReminders)
			}
			v1.GET("/advice", r.notificationController.GetAdvice)
		}
	}
}
