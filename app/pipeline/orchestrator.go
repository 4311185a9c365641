package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/osokin/briefvoice/app/summarize"
)

// Orchestrator runs the request pipeline: resolve the source, extract the
// article text, summarize it with the chosen provider, synthesize speech,
// and archive the artifacts. Every stage failure is terminal; nothing is
// retried and no provider fallback happens here. Any run that reaches
// extraction is archived, failed runs included, with the artifacts of the
// unreached stages left empty.
type Orchestrator struct {
	resolver    FeedResolver
	extractor   TextExtractor
	synthesizer SpeechSynthesizer
	recorder    RequestRecorder
	prompts     PromptSource
}

func NewOrchestrator(resolver FeedResolver, extractor TextExtractor,
	synthesizer SpeechSynthesizer, recorder RequestRecorder, prompts PromptSource) *Orchestrator {
	return &Orchestrator{
		resolver:    resolver,
		extractor:   extractor,
		synthesizer: synthesizer,
		recorder:    recorder,
		prompts:     prompts,
	}
}

// Run executes the full pipeline for one source with one provider.
func (o *Orchestrator) Run(ctx context.Context, source Source, provider summarize.Provider) (*Result, error) {
	slog.Info("Pipeline run started", "source", source.URL, "is_feed", source.IsFeed, "provider", string(provider.ID()))

	prompts, err := o.prompts()
	if err != nil {
		return nil, err
	}

	articleURL := source.URL
	if source.IsFeed {
		resolved, err := o.resolver.LatestItemURL(ctx, source.URL)
		if err != nil {
			return nil, &StageError{Stage: StageResolve, Err: err}
		}
		if resolved == "" {
			return nil, &StageError{Stage: StageResolve, Err: fmt.Errorf("feed %s has no resolvable article", source.URL)}
		}
		articleURL = resolved
		slog.Info("Resolved feed to article", "feed_url", source.URL, "article_url", articleURL)
	}

	text, err := o.extractor.Extract(ctx, articleURL)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	if text == "" {
		return nil, &StageError{Stage: StageExtract, Err: fmt.Errorf("no usable text extracted from %s", articleURL)}
	}

	summary, err := provider.Summarize(ctx, text, prompts)
	if err != nil {
		o.archive(source.URL, text, "", nil)
		return nil, &StageError{Stage: StageSummarize, Err: err}
	}

	audio, err := o.synthesizer.Synthesize(ctx, summary)
	if err != nil {
		o.archive(source.URL, text, summary, nil)
		return nil, &StageError{Stage: StageSynthesize, Err: err}
	}

	o.archive(source.URL, text, summary, audio)

	slog.Info("Pipeline run succeeded", "source", source.URL, "summary_length", len(summary), "audio_bytes", len(audio))

	return &Result{
		Summary:     summary,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
	}, nil
}

// archive persists whatever artifacts the run produced. Every run that got
// past extraction leaves an entry, even when a later stage failed, with the
// unreached artifacts left empty. Archiving is best-effort: a failed write
// never fails the run.
func (o *Orchestrator) archive(source, text, summary string, audio []byte) {
	if _, err := o.recorder.Record(source, text, summary, audio); err != nil {
		slog.Error("Failed to archive request", "source", source, "error", err)
	}
}
