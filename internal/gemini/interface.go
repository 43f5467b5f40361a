package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Generator sends contents to a Gemini model and returns the response text.
type Generator interface {
	Generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
	// GenerateWithFile uploads the file at path through the Files API and
	// sends it by URI, followed by parts. Upload and generation use the
	// same key, since uploaded files belong to the key's project.
	GenerateWithFile(ctx context.Context, model, path, mimeType string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error)
}
