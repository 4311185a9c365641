package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 120 * time.Second

// Error reports a speech synthesis failure caused by the TTS service.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "speech synthesis: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Synthesizer calls a local GPT-SoVITS-style TTS endpoint and returns WAV
// audio for the given text.
type Synthesizer struct {
	client       *resty.Client
	endpoint     string
	lang         string
	refAudioPath string
}

func NewSynthesizer(endpoint, lang, refAudioPath string, timeout time.Duration) *Synthesizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)

	return &Synthesizer{
		client:       client,
		endpoint:     endpoint,
		lang:         lang,
		refAudioPath: refAudioPath,
	}
}

// Synthesize produces WAV bytes for the text. The reference audio path is
// passed along only when the file exists on disk; otherwise the service
// falls back to its default voice.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	params := map[string]string{
		"text":              text,
		"text_lang":         s.lang,
		"prompt_lang":       "auto",
		"text_split_method": "cut5",
		"batch_size":        "1",
		"media_type":        "wav",
		"streaming_mode":    "false",
	}

	if s.refAudioPath != "" {
		if _, err := os.Stat(s.refAudioPath); err == nil {
			params["ref_audio_path"] = s.refAudioPath
		} else {
			slog.Warn("Reference audio not found, using default voice", "path", s.refAudioPath)
		}
	}

	slog.Debug("Sending request to TTS service", "endpoint", s.endpoint, "text_length", len(text))

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(s.endpoint)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("request failed: %w", err)}
	}

	if resp.IsError() {
		return nil, &Error{Err: fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String())}
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return nil, &Error{Err: fmt.Errorf("service returned no audio")}
	}

	slog.Debug("Received audio from TTS service", "bytes", len(audio))

	return audio, nil
}
