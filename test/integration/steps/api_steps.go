package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/cucumber/godog"

	"github.com/subtracker/backend/internal/integration/persistence"
	"github.com/subtracker/backend/test/integration/mock"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I archive the subscription named "([^"]*)"$`, iArchiveTheSubscriptionNamed)
}

// iArchiveTheSubscriptionNamed resolves the record by name and hits the
// archive endpoint, since feature files never see generated IDs.
func iArchiveTheSubscriptionNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}

	subs, err := persistence.NewSubscriptionRepository(tc.db.DbConn).FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}
	for _, sub := range subs {
		if sub.Name == name {
			return doRequest(ctx, http.MethodPost, "/api/v1/subscriptions/"+sub.ID.String()+"/archive", nil)
		}
	}
	return fmt.Errorf("no subscription named %q", name)
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return doRequest(ctx, method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return doRequest(ctx, method, path, []byte(resolveDays(body.Content)))
}

func doRequest(ctx context.Context, method, path string, body []byte) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not initialized")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// dayPlaceholder matches {{D}}, {{D+3}} and {{D-1}} placeholders.
var dayPlaceholder = regexp.MustCompile(`\{\{(D[+-]?\d*)\}\}`)

// resolveDays rewrites day placeholders to ISO dates pinned to the frozen
// test clock.
func resolveDays(content string) string {
	return dayPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		return mock.Day(dayPlaceholder.FindStringSubmatch(match)[1])
	})
}
