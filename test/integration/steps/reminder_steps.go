package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// registerReminderSteps registers reminder delivery assertions.
func registerReminderSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a reminder for "([^"]*)" should have been delivered$`, aReminderShouldHaveBeenDelivered)
	ctx.Step(`^no reminders should have been delivered$`, noRemindersShouldHaveBeenDelivered)
}

func aReminderShouldHaveBeenDelivered(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}
	for _, delivered := range tc.notifier.Names() {
		if delivered == name {
			return nil
		}
	}
	return fmt.Errorf("no reminder delivered for %q (delivered: %v)", name, tc.notifier.Names())
}

func noRemindersShouldHaveBeenDelivered(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}
	if names := tc.notifier.Names(); len(names) > 0 {
		return fmt.Errorf("expected no deliveries, got %v", names)
	}
	return nil
}
