package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
)

// Transcriber turns one normalized slice into text in a fixed language.
type Transcriber interface {
	Transcribe(ctx context.Context, slice normalize.AudioSlice) (string, error)
}
