package source

import (
	"fmt"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/pkg/executor"
)

// Modes accepted by New.
const (
	ModeAuto    = "auto"
	ModeYouTube = "youtube"
	ModeLocal   = "local"
)

// New returns the Acquirer for cfg.Source.Mode. In auto mode the reference
// decides: YouTube URLs are downloaded, anything else is read from disk.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Acquirer, error) {
	prober := NewProber(exec, cfg.Source.FFprobePath)
	yt := &youtubeAcquirer{
		executor:     exec,
		logger:       log,
		prober:       prober,
		binary:       cfg.Source.YtDlpPath,
		ffmpegPath:   cfg.Source.FFmpegPath,
		audioQuality: cfg.Source.AudioQuality,
		outputPath:   cfg.Paths.InputAudio,
	}
	local := &localAcquirer{
		executor:   exec,
		logger:     log,
		prober:     prober,
		ffmpegPath: cfg.Source.FFmpegPath,
		outputPath: cfg.Paths.InputAudio,
	}

	switch cfg.Source.Mode {
	case ModeYouTube:
		return yt, nil
	case ModeLocal:
		return local, nil
	case ModeAuto, "":
		return &autoAcquirer{youtube: yt, local: local}, nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
}

// NewProber returns a Prober backed by ffprobe.
func NewProber(exec executor.Executor, ffprobePath string) Prober {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &ffprobe{executor: exec, binary: ffprobePath}
}
