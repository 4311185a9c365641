package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const articleHTML = `
<!DOCTYPE html>
<html>
<head>
	<title>Test Article</title>
</head>
<body>
	<header>
		<h1>Site Header</h1>
		<nav>Navigation</nav>
	</header>
	<main>
		<article>
			<h1>Main Article Title</h1>
			<p>This is the main content of the article. It contains several paragraphs of meaningful text that should be extracted by the readability algorithm.</p>
			<p>This is another paragraph with more content. The readability algorithm should identify this as the main content area and extract it properly.</p>
			<p>Here is some more substantial content to ensure we meet the character threshold. This paragraph adds more context and information that would be valuable to readers.</p>
		</article>
	</main>
	<footer>
		<p>Copyright 2024</p>
	</footer>
</body>
</html>
`

func TestExtractorValidArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	extractor := NewExtractor("Test Agent/1.0", 5*time.Second)
	text, err := extractor.Extract(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(text, "main content of the article") {
		t.Errorf("Expected extracted text to contain main article text, got: %s", text)
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("Expected plain text without markup, got: %s", text)
	}
}

func TestExtractorEmptyPageDoesNotFallBack(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head><title>Empty</title></head><body></body></html>"))
	}))
	defer server.Close()

	extractor := NewExtractor("Test Agent/1.0", 5*time.Second)
	text, err := extractor.Extract(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Empty extraction must not be an error, got: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text for page without content, got: %s", text)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("Expected a single fetch (no fallback on empty extraction), got %d", got)
	}
}

func TestExtractorFallsBackOnFetchFailure(t *testing.T) {
	var requests atomic.Int32

	// First fetch fails, the fallback fetch succeeds
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><nav>Menu</nav><p>Fallback   body text.</p><script>ignored()</script></body></html>"))
	}))
	defer server.Close()

	extractor := NewExtractor("Test Agent/1.0", 5*time.Second)
	text, err := extractor.Extract(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected fallback to succeed, got: %v", err)
	}
	if !strings.Contains(text, "Fallback body text.") {
		t.Errorf("Expected stripped fallback text, got: %s", text)
	}
	if strings.Contains(text, "ignored()") {
		t.Errorf("Expected script content to be stripped, got: %s", text)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("Expected 2 fetches (primary plus fallback), got %d", got)
	}
}

func TestExtractorBothStrategiesFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	extractor := NewExtractor("Test Agent/1.0", 5*time.Second)
	text, err := extractor.Extract(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected an error when every strategy fails to fetch, got nil")
	}
	if text != "" {
		t.Errorf("Expected empty text alongside the error, got: %s", text)
	}
}

func TestExtractorUnreachableHost(t *testing.T) {
	extractor := NewExtractor("Test Agent/1.0", 2*time.Second)
	_, err := extractor.Extract(context.Background(), "http://127.0.0.1:1/article")

	if err == nil {
		t.Fatal("Expected an error for an unreachable host, got nil")
	}
}
