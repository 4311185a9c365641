package tasks

import (
	"context"

	"github.com/osokin/briefvoice/app/pipeline"
	"github.com/osokin/briefvoice/app/summarize"
)

// PipelineRunner is the orchestrator capability consumed by sweep tasks.
type PipelineRunner interface {
	Run(ctx context.Context, source pipeline.Source, provider summarize.Provider) (*pipeline.Result, error)
}

// SummarizeFeedTask runs the full pipeline for one scheduled feed.
type SummarizeFeedTask struct {
	Task
	runner   PipelineRunner
	provider summarize.Provider
}

func NewSummarizeFeedTask(feedURL string, runner PipelineRunner, provider summarize.Provider) *SummarizeFeedTask {
	return &SummarizeFeedTask{
		Task:     NewTask(TaskTypeSummarizeFeed, feedURL),
		runner:   runner,
		provider: provider,
	}
}

func (t *SummarizeFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	_, err := t.runner.Run(ctx, pipeline.Source{URL: t.FeedURL, IsFeed: true}, t.provider)
	return err
}
