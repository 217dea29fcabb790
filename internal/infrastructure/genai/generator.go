// Package genai implements the spec/payload generator on Vertex AI
// Gemini. One single-turn call per generation; the first candidate's
// first text part is the result.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	vertex "cloud.google.com/go/vertexai/genai"

	"github.com/mohamadfayez/apigee-marketplace/internal/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/domain"
)

// Generator implements domain.SpecGenerator.
type Generator struct {
	model  *vertex.GenerativeModel
	logger *slog.Logger
}

// NewGenerator creates a Vertex AI client and configures the generative
// model. The returned close function releases the underlying connection.
func NewGenerator(ctx context.Context, projectID string, cfg config.ModelConfig) (domain.SpecGenerator, func() error, error) {
	client, err := vertex.NewClient(ctx, projectID, cfg.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(cfg.Name)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	model.SetTemperature(cfg.Temperature)
	model.SetTopP(cfg.TopP)

	slog.Info("generative model configured",
		"model", cfg.Name,
		"location", cfg.Location,
	)

	return &Generator{
		model:  model,
		logger: slog.Default(),
	}, client.Close, nil
}

// Generate sends a single-turn prompt and returns the first candidate's
// text with Markdown code fences stripped. The model wraps JSON answers
// in fences inconsistently, so stripping happens here rather than in
// every caller. No guarantee is made that the result parses.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, vertex.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return "", err
	}

	g.logger.Debug("model response received", "length", len(text))

	return StripFences(text), nil
}

// firstCandidateText extracts the first candidate's first text part,
// validating the response shape at the boundary.
func firstCandidateText(resp *vertex.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("model candidate has no content parts")
	}

	text, ok := content.Parts[0].(vertex.Text)
	if !ok {
		return "", fmt.Errorf("model candidate part is not text")
	}
	return string(text), nil
}

// StripFences removes literal ```json and ``` markers from a model
// answer, leaving everything else untouched.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}
