package pipeline

import (
	"context"

	"github.com/osokin/briefvoice/app/archive"
	"github.com/osokin/briefvoice/app/config"
)

// FeedResolver maps a feed URL to its most recent entry's article URL.
// An empty URL with a nil error means the feed had nothing to resolve.
type FeedResolver interface {
	LatestItemURL(ctx context.Context, feedURL string) (string, error)
}

// TextExtractor derives plain article text from a page URL. An empty string
// with a nil error means the page had no usable content.
type TextExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// SpeechSynthesizer converts summary text into audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// RequestRecorder archives the artifacts of one completed run.
type RequestRecorder interface {
	Record(source, text, summary string, audio []byte) (*archive.Entry, error)
}

// PromptSource supplies the prompt templates for a run.
type PromptSource func() (*config.PromptTemplate, error)
