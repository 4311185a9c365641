package api

import (
	"context"

	"github.com/osokin/briefvoice/app/pipeline"
	"github.com/osokin/briefvoice/app/summarize"
)

// PipelineRunner is the orchestrator capability the API layer consumes.
type PipelineRunner interface {
	Run(ctx context.Context, source pipeline.Source, provider summarize.Provider) (*pipeline.Result, error)
}

// Handler serves the interactive summarization API.
type Handler struct {
	runner    PipelineRunner
	providers summarize.Registry
	feeds     []string
}

// SummarizeRequest carries one source reference plus the provider choice.
// Exactly one of URL and FeedURL must be set.
type SummarizeRequest struct {
	URL      string `json:"url"`
	FeedURL  string `json:"feed_url"`
	Provider string `json:"provider"`
}

// SummarizeResponse is the success payload of POST /summarize.
type SummarizeResponse struct {
	Summary     string `json:"summary"`
	AudioBase64 string `json:"audio_base64"`
}
