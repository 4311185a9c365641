package article

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	readability "github.com/go-shiori/go-readability"
)

const DefaultFetchTimeout = 15 * time.Second

// Extractor derives plain article text from a URL. Strategies are tried in
// declared order; a strategy error moves on to the next one, while a nil
// error stops the chain even when the extracted text is empty. That keeps
// the fallback reserved for fetch failures: a page that fetched fine but
// produced no readable content is reported as empty, not re-scraped.
type Extractor struct {
	client     *resty.Client
	strategies []strategy
}

type strategy struct {
	name string
	run  func(ctx context.Context, pageURL string) (string, error)
}

func NewExtractor(userAgent string, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)

	e := &Extractor{client: client}
	e.strategies = []strategy{
		{name: "readability", run: e.extractReadable},
		{name: "strip_markup", run: e.extractStripped},
	}

	return e
}

// Extract runs the strategy chain for the given URL. It returns an error
// only when every strategy failed to fetch the page; an empty string with
// a nil error means the page had no usable article content.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (string, error) {
	var lastErr error

	for _, s := range e.strategies {
		text, err := s.run(ctx, pageURL)
		if err != nil {
			slog.Warn("Extraction strategy failed", "strategy", s.name, "url", pageURL, "error", err)
			lastErr = err
			continue
		}

		slog.Debug("Extraction strategy finished", "strategy", s.name, "url", pageURL, "text_length", len(text))
		return text, nil
	}

	return "", fmt.Errorf("failed to extract content from %s: %w", pageURL, lastErr)
}

// extractReadable fetches the page and runs the readability heuristic.
// A fetch failure is an error; a fetched page with no readable body is an
// empty result.
func (e *Extractor) extractReadable(ctx context.Context, pageURL string) (string, error) {
	body, err := e.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	parsedURL, _ := url.Parse(pageURL)

	doc, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		slog.Warn("Readability produced no article", "url", pageURL, "error", err)
		return "", nil
	}

	return normalizeWhitespace(doc.TextContent), nil
}

// extractStripped fetches the page again and strips all markup, joining the
// remaining text nodes with single spaces. Best-effort: the result may carry
// navigation and other page chrome.
func (e *Extractor) extractStripped(ctx context.Context, pageURL string) (string, error) {
	body, err := e.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	return normalizeWhitespace(doc.Text()), nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := e.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: status %d", pageURL, resp.StatusCode())
	}

	return resp.Body(), nil
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
