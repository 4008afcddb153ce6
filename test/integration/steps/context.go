// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/subtracker/backend/internal/application/usecase/advice"
	"github.com/subtracker/backend/internal/application/usecase/category"
	"github.com/subtracker/backend/internal/application/usecase/dashboard"
	appnotification "github.com/subtracker/backend/internal/application/usecase/notification"
	"github.com/subtracker/backend/internal/application/usecase/subscription"
	"github.com/subtracker/backend/internal/infra/server/router"
	"github.com/subtracker/backend/internal/integration/entrypoint/controller"
	"github.com/subtracker/backend/internal/integration/notification"
	"github.com/subtracker/backend/internal/integration/persistence"
	"github.com/subtracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	db       *mock.Db
	server   *httptest.Server
	engine   *gin.Engine
	notifier *mock.Notifier
	lookup   *mock.LookupService

	response     *http.Response
	responseBody []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.db != nil {
				_ = tc.db.Close()
			}
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerReminderSteps(ctx)
}

// newTestContext wires the full application against an in-memory database,
// a frozen clock and recording collaborators.
func newTestContext() (*TestContext, error) {
	db, err := mock.NewDb()
	if err != nil {
		return nil, err
	}

	now := mock.Clock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifierMock := &mock.Notifier{}
	lookupMock := &mock.LookupService{
		LogoURL: "https://cdn.example.com/logo.png",
		Advice:  "Cancel one streaming service and save a chai a day.",
	}
	deduper := notification.NewInMemoryDeduper()

	subscriptionRepo := persistence.NewSubscriptionRepository(db.DbConn)
	categoryRepo := persistence.NewCategoryRepository(db.DbConn)
	settingsRepo := persistence.NewSettingsRepository(db.DbConn)

	subscriptionController := controller.NewSubscriptionController(
		subscription.NewListSubscriptionsUseCase(subscriptionRepo, now),
		subscription.NewCreateSubscriptionUseCase(subscriptionRepo),
		subscription.NewUpdateSubscriptionUseCase(subscriptionRepo),
		subscription.NewDeleteSubscriptionUseCase(subscriptionRepo),
		subscription.NewArchiveSubscriptionUseCase(subscriptionRepo),
		subscription.NewFixLogoUseCase(subscriptionRepo, lookupMock, logger),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetOverviewUseCase(subscriptionRepo, now),
	)
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo, subscriptionRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
	)
	notificationController := controller.NewNotificationController(
		appnotification.NewGetPermissionUseCase(settingsRepo),
		appnotification.NewSetPermissionUseCase(settingsRepo),
		appnotification.NewCheckRemindersUseCase(subscriptionRepo, settingsRepo, deduper, notifierMock, logger, now),
		advice.NewGetAdviceUseCase(subscriptionRepo, lookupMock, now),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		subscriptionController,
		dashboardController,
		categoryController,
		notificationController,
	)

	tc := &TestContext{
		db:       db,
		notifier: notifierMock,
		lookup:   lookupMock,
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return tc, nil
}
