package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiInferencer dispatches completions to the Gemini API.
type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiInferencer creates a new inferencer backed by the genai client.
func NewGeminiInferencer(apiKey string, model string) (*GeminiInferencer, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (g *GeminiInferencer) SetModel(model string) {
	g.model = model
}

// safetySettings are the fixed thresholds applied to primary character calls:
// four harm categories, each blocking medium and above.
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}

// Complete issues one generateContent call and returns the first candidate's
// trimmed text.
func (g *GeminiInferencer) Complete(ctx context.Context, params Params, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		TopK:            genai.Ptr(params.TopK),
		TopP:            genai.Ptr(params.TopP),
		MaxOutputTokens: params.MaxOutputTokens,
	}
	if params.Safety {
		config.SafetySettings = safetySettings()
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{
				StatusCode: apiErr.Code,
				Message:    apiErr.Message,
				Details:    apiErr,
			}
		}
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", ErrNoContent
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}
