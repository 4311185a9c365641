package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecordWritesAllArtifacts(t *testing.T) {
	root := t.TempDir()
	recorder := NewRecorder(root)

	entry, err := recorder.Record("https://example.com/a", "hello world", "Hello World Summary", []byte("RIFF..."))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	checks := map[string]string{
		"source.txt":  "https://example.com/a",
		"article.txt": "hello world",
		"summary.txt": "Hello World Summary",
		"audio.wav":   "RIFF...",
	}

	for name, want := range checks {
		data, err := os.ReadFile(filepath.Join(entry.Dir, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("Expected %s to contain %q, got %q", name, want, string(data))
		}
	}
}

func TestRecordDirNameIncludesHost(t *testing.T) {
	root := t.TempDir()
	recorder := NewRecorder(root)

	entry, err := recorder.Record("https://News.Example-Site.com/path", "text", "summary", []byte("audio"))
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Base(entry.Dir)
	if !strings.Contains(name, "news-example-site-com") {
		t.Errorf("Expected sanitized host in dir name, got: %s", name)
	}
}

func TestRecordNonURLSourceHasNoHostSuffix(t *testing.T) {
	root := t.TempDir()
	frozen := time.Date(2024, 6, 1, 12, 30, 45, 123_000_000, time.UTC)
	recorder := NewRecorder(root).WithClock(func() time.Time { return frozen })

	entry, err := recorder.Record("manual run", "text", "summary", []byte("audio"))
	if err != nil {
		t.Fatal(err)
	}

	if got := filepath.Base(entry.Dir); got != "20240601-123045.123" {
		t.Errorf("Expected plain timestamp dir name, got: %s", got)
	}
}

func TestRecordCollidingTimestampsGetUniqueDirs(t *testing.T) {
	root := t.TempDir()
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 500_000_000, time.UTC)
	recorder := NewRecorder(root).WithClock(func() time.Time { return frozen })

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		entry, err := recorder.Record("https://example.com/a", "text", "summary", []byte("audio"))
		if err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
		name := filepath.Base(entry.Dir)
		if seen[name] {
			t.Fatalf("Directory name collision: %s", name)
		}
		seen[name] = true
	}

	if !seen["20240601-120000.500-example-com"] {
		t.Errorf("Expected unsuffixed first entry, got: %v", seen)
	}
	if !seen["20240601-120000.500-example-com-2"] {
		t.Errorf("Expected '-2' suffix on first collision, got: %v", seen)
	}
	if !seen["20240601-120000.500-example-com-3"] {
		t.Errorf("Expected '-3' suffix on second collision, got: %v", seen)
	}
}

func TestRecordFailsOnUnusableRoot(t *testing.T) {
	// A regular file where the archive root should be makes every write fail
	root := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(root, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	recorder := NewRecorder(root)
	if _, err := recorder.Record("src", "text", "summary", nil); err == nil {
		t.Error("Expected error for unusable archive root")
	}
}
