package normalize

import (
	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/pkg/executor"
)

type implNormalizer struct {
	executor   executor.Executor
	logger     logger.Logger
	ffmpegPath string
	outputPath string
	sampleRate int
	channels   int
}

// New creates a Normalizer that writes every slice to cfg.Paths.SliceAudio
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		executor:   exec,
		logger:     log,
		ffmpegPath: cfg.Source.FFmpegPath,
		outputPath: cfg.Paths.SliceAudio,
		sampleRate: cfg.Transcription.SampleRate,
		channels:   cfg.Transcription.Channels,
	}
}
