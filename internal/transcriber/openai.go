package transcriber

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
)

type openAITranscriber struct {
	client   *openai.Client
	model    string
	language string
	logger   logger.Logger
}

// Transcribe uploads the slice to the audio transcriptions endpoint.
// Errors are returned as-is; there is no retry.
func (o *openAITranscriber) Transcribe(ctx context.Context, slice normalize.AudioSlice) (string, error) {
	o.logger.Debug(ctx, "Whisper request: window %d, model %s, language %s", slice.Window.Index, o.model, o.language)

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: slice.Path,
		Language: o.language,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return resp.Text, nil
}
