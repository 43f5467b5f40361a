package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/mediascribe/internal/logger"
)

const docSeparator = "\n\n"

// ErrNothingToSummarize is returned when the source has no text.
var ErrNothingToSummarize = errors.New("nothing to summarize")

// mapReduce summarizes each chunk, then combines the partial summaries.
// While the joined summaries exceed tokenMax runes they are combined in
// groups first.
func mapReduce(ctx context.Context, llm LLM, prompt Prompt, chunks []string, tokenMax int, log logger.Logger) (Output, error) {
	if len(chunks) == 0 {
		return Output{}, ErrNothingToSummarize
	}

	steps := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		log.Info(ctx, "[%d/%d] Summarizing chunk (%d chars)", i+1, len(chunks), utf8.RuneCountInString(chunk))
		out, err := llm.Complete(ctx, prompt.Render(chunk))
		if err != nil {
			return Output{}, fmt.Errorf("map chunk %d: %w", i, err)
		}
		steps = append(steps, out)
	}

	docs := steps
	for tokenMax > 0 && len(docs) > 1 && joinedLen(docs) > tokenMax {
		groups := groupDocs(docs, tokenMax)
		if len(groups) == len(docs) {
			// every summary is already at the limit on its own
			break
		}
		log.Info(ctx, "Collapsing %d summaries into %d", len(docs), len(groups))

		collapsed := make([]string, 0, len(groups))
		for i, g := range groups {
			out, err := llm.Complete(ctx, prompt.Render(strings.Join(g, docSeparator)))
			if err != nil {
				return Output{}, fmt.Errorf("collapse group %d: %w", i, err)
			}
			collapsed = append(collapsed, out)
		}
		docs = collapsed
	}

	log.Info(ctx, "Combining %d summaries", len(docs))
	final, err := llm.Complete(ctx, prompt.Render(strings.Join(docs, docSeparator)))
	if err != nil {
		return Output{}, fmt.Errorf("combine: %w", err)
	}

	return Output{Text: final, Steps: steps}, nil
}

func joinedLen(docs []string) int {
	return utf8.RuneCountInString(strings.Join(docs, docSeparator))
}

// groupDocs packs consecutive docs into groups whose joined length stays
// within limit. A doc longer than limit gets a group of its own.
func groupDocs(docs []string, limit int) [][]string {
	var (
		groups  [][]string
		current []string
	)
	for _, d := range docs {
		if len(current) > 0 && joinedLen(append(current[:len(current):len(current)], d)) > limit {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
