package cfg

type Cfg struct {
	// HTTP service configuration
	Port      string
	UserAgent string

	// Configuration files
	PromptsFile       string
	FeedsFile         string
	GeminiKeyFile     string
	OpenRouterKeyFile string

	// Request archive
	LogsDir string

	// Speech synthesis
	TTSURL       string
	TTSLang      string
	RefAudioPath string

	// Scheduled feed sweep
	SweepInterval int // seconds
	SweepPause    int // seconds, between feeds within one sweep
	SweepProvider string

	// One-shot mode
	URL       string
	URLIsFeed bool
	Provider  string

	// Application metadata
	Debug   bool
	Version string
}
