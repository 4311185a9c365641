package summarize

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/osokin/briefvoice/app/config"
)

const geminiModel = "gemini-2.0-flash"

// Gemini summarizes text through the managed Gemini API with deterministic
// decoding (temperature 0, top-p 1, top-k 1).
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, &config.Error{Source: "gemini", Err: fmt.Errorf("API key is missing")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  geminiModel,
	}, nil
}

func (g *Gemini) ID() ProviderID {
	return ProviderGemini
}

func (g *Gemini) Summarize(ctx context.Context, text string, prompts *config.PromptTemplate) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0),
		TopP:              genai.Ptr[float32](1),
		TopK:              genai.Ptr[float32](1),
		SystemInstruction: genai.NewContentFromText(prompts.SystemPrompt, genai.RoleUser),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	prompt := buildUserPrompt(prompts, text)

	slog.Debug("Sending request to Gemini", "model", g.model, "prompt_length", len(prompt))

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", &Error{Provider: ProviderGemini, Reason: fmt.Sprintf("generate content: %v", err)}
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", &Error{
			Provider: ProviderGemini,
			Reason:   string(result.PromptFeedback.BlockReason),
			Blocked:  true,
		}
	}

	summary := collectText(result)
	if summary == "" {
		return "", &Error{Provider: ProviderGemini, Reason: "empty response"}
	}

	slog.Debug("Received summary from Gemini", "summary_length", len(summary))

	return summary, nil
}

func collectText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text
}
