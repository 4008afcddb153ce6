// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/subtracker/backend/config"
	"github.com/subtracker/backend/internal/application/adapter"
	"github.com/subtracker/backend/internal/application/usecase/advice"
	"github.com/subtracker/backend/internal/application/usecase/category"
	"github.com/subtracker/backend/internal/application/usecase/dashboard"
	appnotification "github.com/subtracker/backend/internal/application/usecase/notification"
	"github.com/subtracker/backend/internal/application/usecase/subscription"
	"github.com/subtracker/backend/internal/infra/server/router"
	"github.com/subtracker/backend/internal/integration/adapters"
	"github.com/subtracker/backend/internal/integration/entrypoint/controller"
	"github.com/subtracker/backend/internal/integration/notification"
	"github.com/subtracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	ReminderWorker *notification.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the reminder deduper then falls back to process
// memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Injector {
	now := time.Now

	// Create repositories
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	var lookupService adapter.LookupService
	if cfg.Gemini.APIKey != "" {
		lookupService = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}

	var deduper adapter.ReminderDeduper
	if redisClient != nil {
		deduper = notification.NewRedisDeduper(redisClient, cfg.Reminder.DedupTTL)
	} else {
		deduper = notification.NewInMemoryDeduper()
	}

	var notifier adapter.ReminderNotifier
	if cfg.Reminder.ResendAPIKey != "" && cfg.Reminder.RecipientEmail != "" {
		notifier = notification.NewResendNotifier(
			cfg.Reminder.ResendAPIKey,
			cfg.Reminder.FromName,
			cfg.Reminder.FromEmail,
			cfg.Reminder.RecipientEmail,
		)
	} else {
		notifier = notification.NewLogNotifier(logger)
	}

	// Create subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo, now)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)
	updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo)
	deleteSubscriptionUseCase := subscription.NewDeleteSubscriptionUseCase(subscriptionRepo)
	archiveSubscriptionUseCase := subscription.NewArchiveSubscriptionUseCase(subscriptionRepo)
	fixLogoUseCase := subscription.NewFixLogoUseCase(subscriptionRepo, lookupService, logger)

	// Create dashboard use case
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(subscriptionRepo, now)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, subscriptionRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create notification and advice use cases
	getPermissionUseCase := appnotification.NewGetPermissionUseCase(settingsRepo)
	setPermissionUseCase := appnotification.NewSetPermissionUseCase(settingsRepo)
	checkRemindersUseCase := appnotification.NewCheckRemindersUseCase(
		subscriptionRepo,
		settingsRepo,
		deduper,
		notifier,
		logger,
		now,
	)
	getAdviceUseCase := advice.NewGetAdviceUseCase(subscriptionRepo, lookupService, now)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		updateSubscriptionUseCase,
		deleteSubscriptionUseCase,
		archiveSubscriptionUseCase,
		fixLogoUseCase,
	)

	dashboardController := controller.NewDashboardController(getOverviewUseCase)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)

	notificationController := controller.NewNotificationController(
		getPermissionUseCase,
		setPermissionUseCase,
		checkRemindersUseCase,
		getAdviceUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		subscriptionController,
		dashboardController,
		categoryController,
		notificationController,
	)

	var worker *notification.Worker
	if cfg.Reminder.WorkerEnabled {
		worker = notification.NewWorker(checkRemindersUseCase, cfg.Reminder.PollInterval, logger)
	}

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         r,
		ReminderWorker: worker,
	}
}
