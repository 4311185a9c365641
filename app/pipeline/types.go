package pipeline

import "fmt"

// Source is the caller-supplied reference to summarize: either a direct
// article URL or a feed URL whose latest entry is resolved first.
type Source struct {
	URL    string
	IsFeed bool
}

// Result is the terminal success state of one pipeline run.
type Result struct {
	Summary     string
	AudioBase64 string
}

// Stage names the pipeline step an error originated from.
type Stage string

const (
	StageResolve    Stage = "resolve"
	StageExtract    Stage = "extract"
	StageSummarize  Stage = "summarize"
	StageSynthesize Stage = "synthesize"
)

// StageError is the terminal failure state of a pipeline run: the stage
// that short-circuited plus its underlying cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
