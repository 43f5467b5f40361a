package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const stepRule = "\n\n----------------------------------------\n\n"

// Summarize reads sourcePath, runs the map-reduce chain and writes the
// final text, the intermediate steps and, when enabled, a .docx copy.
func (s *implSummarizer) Summarize(ctx context.Context, sourcePath string, prompt Prompt) (Output, error) {
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return Output{}, fmt.Errorf("read source: %w", err)
	}

	chunks := SplitText(string(content), s.separator, s.chunkSize, s.chunkOverlap)
	s.logger.Info(ctx, "Split %s into %d chunk(s) (size %d, overlap %d)", sourcePath, len(chunks), s.chunkSize, s.chunkOverlap)

	out, err := mapReduce(ctx, s.llm, prompt, chunks, s.tokenMax, s.logger)
	if err != nil {
		return Output{}, err
	}

	if err := writeText(s.outputPath, out.Text); err != nil {
		return out, fmt.Errorf("write summary: %w", err)
	}
	if err := writeText(s.stepsPath, formatSteps(out.Steps)); err != nil {
		return out, fmt.Errorf("write steps: %w", err)
	}
	s.logger.Info(ctx, "Summary written: %s (steps: %s)", s.outputPath, s.stepsPath)

	if s.docx {
		docxPath := strings.TrimSuffix(s.outputPath, filepath.Ext(s.outputPath)) + ".docx"
		title := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
		if err := markdownToDocx(title, out.Text, docxPath); err != nil {
			return out, fmt.Errorf("write docx: %w", err)
		}
		s.logger.Info(ctx, "Docx written: %s", docxPath)
	}

	return out, nil
}

func formatSteps(steps []string) string {
	var sb strings.Builder
	for i, step := range steps {
		if i > 0 {
			sb.WriteString(stepRule)
		}
		fmt.Fprintf(&sb, "## Step %d\n\n%s", i+1, strings.TrimSpace(step))
	}
	sb.WriteString("\n")
	return sb.String()
}

func writeText(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0644)
}
