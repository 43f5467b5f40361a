package summarizer

import (
	"strings"
	"unicode/utf8"
)

// SplitText cuts text on separator and greedily re-joins the pieces into
// chunks of at most size runes. Consecutive chunks share a tail of up to
// overlap runes. A single piece longer than size becomes its own chunk.
func SplitText(text, separator string, size, overlap int) []string {
	var pieces []string
	if separator == "" {
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
	} else {
		for _, p := range strings.Split(text, separator) {
			if p != "" {
				pieces = append(pieces, p)
			}
		}
	}
	return mergePieces(pieces, separator, size, overlap)
}

func mergePieces(pieces []string, separator string, size, overlap int) []string {
	sepLen := utf8.RuneCountInString(separator)

	var (
		chunks  []string
		current []string
		total   int
	)

	// sepIf returns the separator length when current already holds n+ pieces.
	sepIf := func(n int) int {
		if len(current) > n {
			return sepLen
		}
		return 0
	}

	for _, piece := range pieces {
		l := utf8.RuneCountInString(piece)

		if total+l+sepIf(0) > size && len(current) > 0 {
			if chunk := joinChunk(current, separator); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > overlap || (total+l+sepIf(0) > size && total > 0) {
				total -= utf8.RuneCountInString(current[0]) + sepIf(1)
				current = current[1:]
			}
		}

		current = append(current, piece)
		total += l + sepIf(1)
	}

	if chunk := joinChunk(current, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func joinChunk(pieces []string, separator string) string {
	return strings.TrimSpace(strings.Join(pieces, separator))
}
