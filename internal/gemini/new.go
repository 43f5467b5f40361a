package gemini

import (
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
)

type implGenerator struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
}

// New creates a Generator that rotates through the supplied Gemini API keys.
func New(apiKeys []string, log logger.Logger) Generator {
	return &implGenerator{
		apiKeys: apiKeys,
		logger:  log,
	}
}
