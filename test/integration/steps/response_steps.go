package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	value, err := responseField(ctx, path)
	if err != nil {
		return err
	}
	if got := stringify(value); got != resolveDaysInExpectation(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	_, err := responseField(ctx, path)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, path string, count int) error {
	value, err := responseField(ctx, path)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substr string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.responseBody == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), resolveDaysInExpectation(substr)) {
		return fmt.Errorf("response does not contain %q (body: %s)", substr, tc.responseBody)
	}
	return nil
}

// responseField walks a dot-separated path through the JSON response.
// Numeric segments index into arrays: "subscriptions.0.name".
func responseField(ctx context.Context, path string) (interface{}, error) {
	tc := GetTestContext(ctx)
	if tc == nil || tc.responseBody == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var doc interface{}
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, tc.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}

// stringify renders a JSON value the way the feature file writes it.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}

// resolveDaysInExpectation lets expected values use the same {{D}} placeholders
// as request bodies.
func resolveDaysInExpectation(expected string) string {
	return resolveDays(expected)
}
