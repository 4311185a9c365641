package article

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gofeed"
)

// Resolver maps an RSS/Atom feed URL to the URL of its most recent entry.
type Resolver struct {
	gofeedParser *gofeed.Parser
}

func NewResolver(userAgent string) *Resolver {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &Resolver{
		gofeedParser: parser,
	}
}

// LatestItemURL returns the link of the first entry of the feed, which is
// assumed to be the most recent one. An empty or unparsable feed yields an
// empty URL and no error; the caller decides how to surface the absence.
func (r *Resolver) LatestItemURL(ctx context.Context, feedURL string) (string, error) {
	parsed, err := r.gofeedParser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		slog.Debug("Feed fetch or parse failed", "feed_url", feedURL, "error", err)
		return "", nil
	}

	if len(parsed.Items) == 0 {
		slog.Debug("Feed has no entries", "feed_url", feedURL)
		return "", nil
	}

	link := parsed.Items[0].Link
	if link == "" {
		slog.Debug("Latest feed entry has no link", "feed_url", feedURL)
		return "", nil
	}

	slog.Debug("Resolved latest feed entry", "feed_url", feedURL, "article_url", link)

	return link, nil
}
