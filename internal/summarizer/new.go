package summarizer

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/gemini"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
)

type implSummarizer struct {
	llm          LLM
	logger       logger.Logger
	separator    string
	chunkSize    int
	chunkOverlap int
	tokenMax     int
	outputPath   string
	stepsPath    string
	docx         bool
}

// New creates a Summarizer writing to cfg.Paths.Summary and cfg.Paths.Steps
func New(cfg *config.Config, llm LLM, log logger.Logger) Summarizer {
	return &implSummarizer{
		llm:          llm,
		logger:       log,
		separator:    cfg.Summary.Separator,
		chunkSize:    cfg.Summary.ChunkSize,
		chunkOverlap: *cfg.Summary.ChunkOverlap,
		tokenMax:     cfg.Summary.TokenMax,
		outputPath:   cfg.Paths.Summary,
		stepsPath:    cfg.Paths.Steps,
		docx:         cfg.Summary.Docx,
	}
}

// NewLLM returns the LLM for cfg.Summary.Backend. The backend credential must be present.
func NewLLM(cfg *config.Config, log logger.Logger) (LLM, error) {
	backend := cfg.Summary.Backend
	if err := cfg.RequireCredential(backend); err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendOpenAI:
		c := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			c.BaseURL = cfg.OpenAI.BaseURL
		}
		return &openAILLM{
			client:      openai.NewClientWithConfig(c),
			model:       cfg.Summary.Model,
			temperature: *cfg.Summary.Temperature,
		}, nil
	case config.BackendGemini:
		return &geminiLLM{
			generator:   gemini.New(cfg.Gemini.APIKeys, log),
			model:       cfg.Summary.Model,
			temperature: *cfg.Summary.Temperature,
		}, nil
	default:
		return nil, fmt.Errorf("unknown summary backend %q", backend)
	}
}
