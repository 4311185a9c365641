package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/osokin/briefvoice/app/config"
)

// ProviderID selects one of the two summarization backends.
type ProviderID string

const (
	ProviderGemini     ProviderID = "gemini"
	ProviderOpenRouter ProviderID = "openrouter"
)

func ParseProviderID(s string) (ProviderID, error) {
	switch ProviderID(s) {
	case ProviderGemini:
		return ProviderGemini, nil
	case ProviderOpenRouter:
		return ProviderOpenRouter, nil
	default:
		return "", fmt.Errorf("unknown provider: %q", s)
	}
}

// Provider is the single capability the pipeline needs from a summarization
// backend: article text in, summary out.
type Provider interface {
	ID() ProviderID
	Summarize(ctx context.Context, text string, prompts *config.PromptTemplate) (string, error)
}

// Registry holds the configured providers, chosen once per request.
type Registry map[ProviderID]Provider

func (r Registry) Get(id ProviderID) (Provider, error) {
	provider, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured", id)
	}
	return provider, nil
}

// Error reports a summarization failure. Blocked marks the provider refusing
// the content for policy reasons; everything else is an empty or malformed
// response. Body carries the raw upstream payload for diagnostics and is
// never sent to API clients.
type Error struct {
	Provider ProviderID
	Reason   string
	Blocked  bool
	Body     string
}

func (e *Error) Error() string {
	if e.Blocked {
		return fmt.Sprintf("%s: request blocked: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

// buildUserPrompt substitutes the article text into the user prompt template.
func buildUserPrompt(template *config.PromptTemplate, text string) string {
	return strings.Replace(template.UserPromptTemplate, config.TextPlaceholder, text, 1)
}
