// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/subtracker/backend/internal/domain/entity"
)

// defaultGeminiModel is used when no model is configured.
const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements the adapter.LookupService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// FindLogoURL asks Gemini for a direct logo image URL for a service name.
func (s *GeminiService) FindLogoURL(ctx context.Context, serviceName string) (string, error) {
	prompt := fmt.Sprintf(
		`Find the official logo image URL for the subscription service %q.
Respond with ONLY a direct https URL to a logo image file (png, jpg, svg or webp).
Prefer well-known logo CDNs. If you cannot find one, respond with the single word NONE.`,
		serviceName,
	)

	text, err := s.generate(ctx, prompt, 0.2)
	if err != nil {
		return "", err
	}

	logoURL := strings.TrimSpace(text)
	if logoURL == "" || strings.EqualFold(logoURL, "NONE") || !strings.HasPrefix(logoURL, "https://") {
		return "", nil
	}
	// Models occasionally wrap the URL in markdown or trailing prose.
	if i := strings.IndexAny(logoURL, " \n\t"); i > 0 {
		logoURL = logoURL[:i]
	}
	return logoURL, nil
}

// SavingsAdvice asks Gemini for a one-sentence savings tip over the active set.
func (s *GeminiService) SavingsAdvice(ctx context.Context, active []*entity.Subscription) (string, error) {
	var sb strings.Builder
	sb.WriteString("Here are my active subscriptions with their monthly prices in Indian Rupees:\n")
	for _, sub := range active {
		fmt.Fprintf(&sb, "- %s (%s): ₹%s\n", sub.Name, sub.Category, sub.Price.StringFixed(2))
	}
	sb.WriteString(`
Give me ONE witty, practical money-saving tip about these subscriptions,
written for an Indian audience. Respond with a single sentence, no preamble.`)

	text, err := s.generate(ctx, sb.String(), 0.8)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate runs a single text prompt through the configured model.
func (s *GeminiService) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
