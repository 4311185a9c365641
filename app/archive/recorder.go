package archive

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const dirTimeLayout = "20060102-150405.000"

// Entry names one recorded request directory.
type Entry struct {
	Dir string
}

// Recorder persists one directory per pipeline run with the source note,
// extracted text, summary, and audio. The archive is append-only: entries
// are never mutated or deleted.
type Recorder struct {
	root string
	now  func() time.Time
}

func NewRecorder(root string) *Recorder {
	return &Recorder{
		root: root,
		now:  time.Now,
	}
}

// WithClock overrides the timestamp source, used by tests to force
// directory-name collisions.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// Record writes the four request artifacts under a uniquely named directory.
func (r *Recorder) Record(source, text, summary string, audio []byte) (*Entry, error) {
	dir, err := r.createEntryDir(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive entry: %w", err)
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{"source.txt", []byte(source)},
		{"article.txt", []byte(text)},
		{"summary.txt", []byte(summary)},
		{"audio.wav", audio},
	}

	for _, artifact := range artifacts {
		path := filepath.Join(dir, artifact.name)
		if err := os.WriteFile(path, artifact.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", artifact.name, err)
		}
	}

	slog.Info("Archived request", "dir", dir, "text_length", len(text), "summary_length", len(summary), "audio_bytes", len(audio))

	return &Entry{Dir: dir}, nil
}

// createEntryDir builds the timestamped directory, appending a numeric
// suffix when two requests land on the same millisecond.
func (r *Recorder) createEntryDir(source string) (string, error) {
	if err := os.MkdirAll(r.root, 0755); err != nil {
		return "", err
	}

	base := r.now().Format(dirTimeLayout)
	if host := sanitizeHost(source); host != "" {
		base += "-" + host
	}

	name := base
	for i := 2; ; i++ {
		dir := filepath.Join(r.root, name)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return dir, nil
		}
		if !os.IsExist(err) {
			return "", err
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

// sanitizeHost derives a filesystem-safe hostname fragment from the source
// identifier to keep the archive browsable. Non-URL sources yield an empty
// fragment.
func sanitizeHost(source string) string {
	parsed, err := url.Parse(source)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.Map(func(ch rune) rune {
		switch {
		case ch >= 'a' && ch <= 'z':
			return ch
		case ch >= '0' && ch <= '9':
			return ch
		default:
			return '-'
		}
	}, host)

	return strings.Trim(host, "-")
}
