package transcriber

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/gemini"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
)

// New returns the Transcriber for cfg.Transcription.Backend. The backend
// credential must be present.
func New(cfg *config.Config, log logger.Logger) (Transcriber, error) {
	backend := cfg.Transcription.Backend
	if err := cfg.RequireCredential(backend); err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Transcription.Model, cfg.Transcription.Language, log), nil
	case config.BackendGemini:
		return NewGemini(gemini.New(cfg.Gemini.APIKeys, log), cfg.Transcription.Model, cfg.Transcription.Language, log), nil
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", backend)
	}
}

// NewOpenAI creates a Whisper transcriber. baseURL may be empty.
func NewOpenAI(apiKey, baseURL, model, language string, log logger.Logger) Transcriber {
	c := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	return &openAITranscriber{
		client:   openai.NewClientWithConfig(c),
		model:    model,
		language: language,
		logger:   log,
	}
}

// NewGemini creates a transcriber that sends the slice inline to Gemini.
func NewGemini(gen gemini.Generator, model, language string, log logger.Logger) Transcriber {
	return &geminiTranscriber{
		generator: gen,
		model:     model,
		language:  language,
		logger:    log,
	}
}
