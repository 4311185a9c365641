package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolverLatestItemURL(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Newest Item</title>
      <link>https://example.com/newest</link>
      <guid>item-1</guid>
      <pubDate>Mon, 03 Jul 2023 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Older Item</title>
      <link>https://example.com/older</link>
      <guid>item-2</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(rssData))
	}))
	defer server.Close()

	resolver := NewResolver("Test Agent/1.0")
	link, err := resolver.LatestItemURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if link != "https://example.com/newest" {
		t.Errorf("Expected link 'https://example.com/newest', got: %s", link)
	}
}

func TestResolverEmptyFeedReturnsAbsent(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Empty Feed</title>
    <link>https://example.com</link>
    <description>No items here</description>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(rssData))
	}))
	defer server.Close()

	resolver := NewResolver("Test Agent/1.0")
	link, err := resolver.LatestItemURL(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Empty feed must not return an error, got: %v", err)
	}
	if link != "" {
		t.Errorf("Expected absent link for empty feed, got: %s", link)
	}
}

func TestResolverUnparsableFeedReturnsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	resolver := NewResolver("Test Agent/1.0")
	link, err := resolver.LatestItemURL(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Unparsable feed must not return an error, got: %v", err)
	}
	if link != "" {
		t.Errorf("Expected absent link for unparsable feed, got: %s", link)
	}
}

func TestResolverUnreachableFeedReturnsAbsent(t *testing.T) {
	resolver := NewResolver("Test Agent/1.0")
	link, err := resolver.LatestItemURL(context.Background(), "http://127.0.0.1:1/feed.xml")

	if err != nil {
		t.Fatalf("Unreachable feed must not return an error, got: %v", err)
	}
	if link != "" {
		t.Errorf("Expected absent link for unreachable feed, got: %s", link)
	}
}
