package config

// PromptTemplate holds the prompt pair sent to a summarization provider.
// UserPromptTemplate contains a single {{text}} placeholder for the article body.
type PromptTemplate struct {
	SystemPrompt       string `yaml:"system_prompt"`
	UserPromptTemplate string `yaml:"user_prompt_template"`
}

// FeedList is the declared-order list of feed URLs processed by the sweep.
type FeedList struct {
	Feeds []string `yaml:"feeds"`
}

// Error marks a configuration problem: missing or malformed credentials,
// templates, or feed lists. The API layer maps it to a 500-class response.
type Error struct {
	Source string // file the problem was found in
	Err    error
}

func (e *Error) Error() string {
	return "config " + e.Source + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
