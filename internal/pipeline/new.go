package pipeline

import (
	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
	"github.com/nguyentantai21042004/mediascribe/internal/source"
	"github.com/nguyentantai21042004/mediascribe/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	acquirer    source.Acquirer
	normalizer  normalize.Normalizer
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a Pipeline from its stages
func New(cfg *config.Config, acq source.Acquirer, norm normalize.Normalizer, tr transcriber.Transcriber, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		acquirer:    acq,
		normalizer:  norm,
		transcriber: tr,
		logger:      log,
	}
}
