package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osokin/briefvoice/app/summarize"
)

var _ SweepSchedulerInterface = (*Scheduler)(nil)

// Scheduler periodically sweeps the configured feed list through the
// pipeline. Feeds are processed one at a time in declared order with a
// pause between them; a failing feed is logged and the sweep moves on.
type Scheduler struct {
	runner   PipelineRunner
	provider summarize.Provider
	feeds    []string
	interval time.Duration
	pause    time.Duration
	trigger  <-chan time.Time
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(runner PipelineRunner, provider summarize.Provider, feeds []string,
	interval, pause time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		runner:   runner,
		provider: provider,
		feeds:    feeds,
		interval: interval,
		pause:    pause,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// WithTrigger replaces the interval ticker with an external trigger
// channel, used by tests to drive sweeps deterministically.
func (s *Scheduler) WithTrigger(trigger <-chan time.Time) *Scheduler {
	s.trigger = trigger
	return s
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		trigger := s.trigger
		if trigger == nil {
			ticker := time.NewTicker(s.interval)
			defer ticker.Stop()
			trigger = ticker.C
		}

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-trigger:
				s.runSweep()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// runSweep processes every configured feed once, sequentially.
func (s *Scheduler) runSweep() {
	if len(s.feeds) == 0 {
		slog.Debug("No feeds configured, skipping sweep")
		return
	}

	slog.Info("Sweep started", "feeds", len(s.feeds), "provider", string(s.provider.ID()))

	for i, feedURL := range s.feeds {
		select {
		case <-s.ctx.Done():
			slog.Info("Sweep interrupted by shutdown")
			return
		default:
		}

		task := NewSummarizeFeedTask(feedURL, s.runner, s.provider)
		s.executeTask(task)

		// Pause between feeds to avoid bursting the downstream services
		if i < len(s.feeds)-1 {
			select {
			case <-s.ctx.Done():
				return
			case <-time.After(s.pause):
			}
		}
	}

	slog.Info("Sweep finished", "feeds", len(s.feeds))
}

// executeTask runs one sweep task. Errors are logged and isolated so the
// sweep continues with the remaining feeds.
func (s *Scheduler) executeTask(task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Sweep task failed", "type", string(task.GetType()), "id", task.GetID(), "feed_url", task.GetFeedURL(), "duration", task.GetDuration().String(), "error", err)
		return
	}

	slog.Info("Sweep task finished", "type", string(task.GetType()), "feed_url", task.GetFeedURL(), "duration", task.GetDuration().String())
}
