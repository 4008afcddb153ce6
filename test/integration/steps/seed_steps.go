package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/subtracker/backend/internal/domain/entity"
	"github.com/subtracker/backend/internal/integration/persistence"
	"github.com/subtracker/backend/test/integration/mock"
)

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following subscriptions exist:$`, theFollowingSubscriptionsExist)
	ctx.Step(`^the custom category "([^"]*)" exists$`, theCustomCategoryExists)
	ctx.Step(`^notification permission is "([^"]*)"$`, notificationPermissionIs)
}

// theFollowingSubscriptionsExist seeds subscriptions from a table. Columns:
// name, price, end_date (relative D expressions allowed), plus optional
// category, reminder_days, archived, sound_tone.
func theFollowingSubscriptionsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	repo := persistence.NewSubscriptionRepository(tc.db.DbConn)
	for _, row := range table.Rows[1:] {
		fields := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			fields[header[i]] = cell.Value
		}

		price, err := decimal.NewFromString(fields["price"])
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", fields["price"], err)
		}
		reminderDays := 3
		if v, ok := fields["reminder_days"]; ok {
			if reminderDays, err = strconv.Atoi(v); err != nil {
				return fmt.Errorf("invalid reminder_days %q: %w", v, err)
			}
		}
		category := fields["category"]
		if category == "" {
			category = "Other"
		}
		soundTone := fields["sound_tone"]
		if soundTone == "" {
			soundTone = entity.SoundToneNone
		}

		sub := entity.NewSubscription(
			fields["name"],
			price,
			entity.BillingCycleMonthly,
			mock.Day("D-30"),
			mock.Day(fields["end_date"]),
			reminderDays,
			category,
			"",
			"",
			soundTone,
		)
		if fields["archived"] == "true" {
			sub.IsArchived = true
		}

		if err := repo.Create(ctx, sub); err != nil {
			return fmt.Errorf("failed to seed subscription %q: %w", fields["name"], err)
		}
	}
	return nil
}

func theCustomCategoryExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}
	return persistence.NewCategoryRepository(tc.db.DbConn).Create(ctx, name)
}

func notificationPermissionIs(ctx context.Context, permission string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}
	return persistence.NewSettingsRepository(tc.db.DbConn).
		SetNotificationPermission(ctx, entity.NotificationPermission(permission))
}
