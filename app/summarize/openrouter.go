package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osokin/briefvoice/app/config"
)

const (
	openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel    = "google/gemini-2.0-flash-exp:free"

	// Upper bound on how much of an upstream body is kept for diagnostics
	maxDiagnosticBody = 2048
)

// OpenRouter summarizes text through the OpenRouter chat-completions API,
// an OpenAI-compatible aggregator endpoint.
type OpenRouter struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewOpenRouter(apiKey string) (*OpenRouter, error) {
	if apiKey == "" {
		return nil, &config.Error{Source: "openrouter", Err: fmt.Errorf("API key is missing")}
	}

	return &OpenRouter{
		endpoint: openRouterEndpoint,
		model:    openRouterModel,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

func (o *OpenRouter) ID() ProviderID {
	return ProviderOpenRouter
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenRouter) Summarize(ctx context.Context, text string, prompts *config.PromptTemplate) (string, error) {
	var messages []chatMessage
	if prompts.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: prompts.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: buildUserPrompt(prompts, text)})

	body, err := json.Marshal(chatRequest{Model: o.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal openrouter payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://github.com/osokin/briefvoice")
	req.Header.Set("X-Title", "BriefVoice")

	slog.Debug("Sending request to OpenRouter", "model", o.model)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", &Error{Provider: ProviderOpenRouter, Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &Error{Provider: ProviderOpenRouter, Reason: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &Error{
			Provider: ProviderOpenRouter,
			Reason:   fmt.Sprintf("status %s", resp.Status),
			Body:     diagnosticBody(raw),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &Error{
			Provider: ProviderOpenRouter,
			Reason:   fmt.Sprintf("malformed response: %v", err),
			Body:     diagnosticBody(raw),
		}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &Error{
			Provider: ProviderOpenRouter,
			Reason:   "response has no choices",
			Body:     diagnosticBody(raw),
		}
	}

	summary := parsed.Choices[0].Message.Content

	slog.Debug("Received summary from OpenRouter", "summary_length", len(summary))

	return summary, nil
}

func diagnosticBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > maxDiagnosticBody {
		body = body[:maxDiagnosticBody]
	}
	return body
}
