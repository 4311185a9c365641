package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osokin/briefvoice/app/config"
	"github.com/osokin/briefvoice/app/pipeline"
	"github.com/osokin/briefvoice/app/summarize"
)

func NewHandler(runner PipelineRunner, providers summarize.Registry, feeds []string) *Handler {
	return &Handler{
		runner:    runner,
		providers: providers,
		feeds:     feeds,
	}
}

// Summarize runs the full pipeline for one request.
func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON"})
		return
	}

	if (req.URL == "") == (req.FeedURL == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of 'url' and 'feed_url' is required"})
		return
	}

	if req.Provider == "" {
		req.Provider = string(summarize.ProviderGemini)
	}

	providerID, err := summarize.ParseProviderID(req.Provider)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider: " + req.Provider})
		return
	}

	provider, err := h.providers.Get(providerID)
	if err != nil {
		slog.Error("Provider not configured", "provider", req.Provider, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Provider is not configured: " + req.Provider})
		return
	}

	source := pipeline.Source{URL: req.URL}
	if req.FeedURL != "" {
		source = pipeline.Source{URL: req.FeedURL, IsFeed: true}
	}

	result, err := h.runner.Run(c.Request.Context(), source, provider)
	if err != nil {
		status, message := classifyError(err)
		slog.Error("Pipeline run failed", "source", source.URL, "provider", req.Provider, "status", status, "error", err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{
		Summary:     result.Summary,
		AudioBase64: result.AudioBase64,
	})
}

// classifyError maps a pipeline failure to an HTTP status and a sanitized
// message. Diagnostic detail (raw upstream bodies included) stays in the
// server log only.
func classifyError(err error) (int, string) {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError, "Server configuration error"
	}

	var stageErr *pipeline.StageError
	if !errors.As(err, &stageErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch stageErr.Stage {
	case pipeline.StageResolve:
		return http.StatusBadRequest, "Feed has no resolvable article"
	case pipeline.StageExtract:
		return http.StatusUnprocessableEntity, "No usable text could be extracted from the article"
	case pipeline.StageSummarize:
		var provErr *summarize.Error
		if errors.As(err, &provErr) && provErr.Blocked {
			return http.StatusBadGateway, "Summarization was blocked by the provider: " + provErr.Reason
		}
		return http.StatusInternalServerError, "Summarization failed"
	case pipeline.StageSynthesize:
		return http.StatusBadGateway, "Speech synthesis service is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// GetFeeds exposes the configured sweep feed list, read-only.
func (h *Handler) GetFeeds(c *gin.Context) {
	feeds := h.feeds
	if feeds == nil {
		feeds = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"feeds": feeds,
		"total": len(feeds),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":       time.Now().In(time.Local).Format(time.RFC3339),
		"scheduled_feeds": len(h.feeds),
		"providers":       len(h.providers),
	})
}
