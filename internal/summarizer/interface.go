package summarizer

import "context"

// LLM completes a single prompt.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Summarizer condenses a long text file with a map-reduce chain.
type Summarizer interface {
	Summarize(ctx context.Context, sourcePath string, prompt Prompt) (Output, error)
}

// Output holds the final text and the per-chunk map results.
type Output struct {
	Text  string
	Steps []string
}
