package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/language"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP service configuration
	Port      string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"BriefVoice/1.0" description:"User agent string for HTTP requests"`

	// Configuration files
	PromptsFile       string `long:"prompts-file" env:"PROMPTS_FILE" default:"./prompt_config.yaml" description:"YAML file with system and user prompt templates"`
	FeedsFile         string `long:"feeds-file" env:"FEEDS_FILE" default:"./feeds.yaml" description:"YAML file listing feed URLs for the scheduled sweep"`
	GeminiKeyFile     string `long:"gemini-key-file" env:"GEMINI_KEY_FILE" default:"./api_key.txt" description:"File containing the Gemini API key"`
	OpenRouterKeyFile string `long:"openrouter-key-file" env:"OPENROUTER_KEY_FILE" default:"./api_key.txt" description:"File containing the OpenRouter API key"`

	// Request archive
	LogsDir string `long:"logs-dir" env:"LOGS_DIR" default:"./logs" description:"Directory for per-request archive entries"`

	// Speech synthesis
	TTSURL       string `long:"tts-url" env:"TTS_URL" default:"http://127.0.0.1:9880/tts" description:"Local TTS service endpoint"`
	TTSLang      string `long:"tts-lang" env:"TTS_LANG" default:"zh" description:"Target language tag for speech synthesis"`
	RefAudioPath string `long:"ref-audio" env:"REF_AUDIO_PATH" default:"./ref_audio.wav" description:"Reference audio sample for voice cloning (used only if the file exists)"`

	// Scheduled feed sweep
	SweepInterval int    `long:"sweep-interval" env:"SWEEP_INTERVAL" default:"3600" description:"Interval between feed sweeps in seconds"`
	SweepPause    int    `long:"sweep-pause" env:"SWEEP_PAUSE" default:"5" description:"Pause between feeds within one sweep in seconds"`
	SweepProvider string `long:"sweep-provider" env:"SWEEP_PROVIDER" default:"gemini" choice:"gemini" choice:"openrouter" description:"Summarization provider used by the scheduled sweep"`

	// One-shot mode
	URL       string `long:"url" env:"URL" description:"Run once for this article or feed URL and exit (skips the HTTP server)"`
	URLIsFeed bool   `long:"feed" env:"URL_IS_FEED" description:"Treat --url as a feed URL and summarize its latest entry"`
	Provider  string `long:"provider" env:"PROVIDER" default:"gemini" choice:"gemini" choice:"openrouter" description:"Summarization provider for one-shot mode"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if _, err := language.Parse(raw.TTSLang); err != nil {
		return nil, fmt.Errorf("invalid TTS language tag %q: %w", raw.TTSLang, err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		UserAgent:         raw.UserAgent,
		PromptsFile:       raw.PromptsFile,
		FeedsFile:         raw.FeedsFile,
		GeminiKeyFile:     raw.GeminiKeyFile,
		OpenRouterKeyFile: raw.OpenRouterKeyFile,
		LogsDir:           raw.LogsDir,
		TTSURL:            raw.TTSURL,
		TTSLang:           raw.TTSLang,
		RefAudioPath:      raw.RefAudioPath,
		SweepInterval:     raw.SweepInterval,
		SweepPause:        raw.SweepPause,
		SweepProvider:     raw.SweepProvider,
		URL:               raw.URL,
		URLIsFeed:         raw.URLIsFeed,
		Provider:          raw.Provider,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
