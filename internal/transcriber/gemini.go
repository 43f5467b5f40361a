package transcriber

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/mediascribe/internal/gemini"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
)

// MaxInlineBytes is the largest slice sent inline. Inline data is base64
// encoded into a request capped at 20 MB; larger slices go through the
// Files API. A full 600 s window at 16 kHz mono is about 19.2 MB.
const MaxInlineBytes = 15 << 20

const transcribePrompt = `Transcribe the speech in this audio verbatim. The spoken language is ISO-639-1 "%s".
Return only the transcript text, with no timestamps, speaker labels, headings or commentary.`

type geminiTranscriber struct {
	generator gemini.Generator
	model     string
	language  string
	logger    logger.Logger
}

func (g *geminiTranscriber) Transcribe(ctx context.Context, slice normalize.AudioSlice) (string, error) {
	info, err := os.Stat(slice.Path)
	if err != nil {
		return "", fmt.Errorf("read slice: %w", err)
	}

	prompt := genai.NewPartFromText(fmt.Sprintf(transcribePrompt, g.language))
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}

	var text string
	if info.Size() > MaxInlineBytes {
		g.logger.Debug(ctx, "Gemini transcription: window %d, uploading %d bytes", slice.Window.Index, info.Size())
		text, err = g.generator.GenerateWithFile(ctx, g.model, slice.Path, "audio/wav", []*genai.Part{prompt}, cfg)
	} else {
		var data []byte
		data, err = os.ReadFile(slice.Path)
		if err != nil {
			return "", fmt.Errorf("read slice: %w", err)
		}
		g.logger.Debug(ctx, "Gemini transcription: window %d, %d bytes inline", slice.Window.Index, len(data))
		contents := []*genai.Content{
			genai.NewContentFromParts([]*genai.Part{
				genai.NewPartFromBytes(data, "audio/wav"),
				prompt,
			}, genai.RoleUser),
		}
		text, err = g.generator.Generate(ctx, g.model, contents, cfg)
	}
	if err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}
	return text, nil
}
