package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
	"github.com/nguyentantai21042004/mediascribe/internal/pipeline"
	"github.com/nguyentantai21042004/mediascribe/internal/source"
	"github.com/nguyentantai21042004/mediascribe/internal/transcriber"
	"github.com/nguyentantai21042004/mediascribe/pkg/executor"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [URL or FILE]",
	Short: "Transcribe a YouTube URL or a local video into the transcript file",
	Example: `  # YouTube video, detected from the URL
  mediascribe transcribe "https://www.youtube.com/watch?v=tAP1eZYEuKA"

  # Local recording
  mediascribe transcribe talk.mp4

  # Force the local strategy
  mediascribe transcribe --mode local ./downloads/watch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return pipeline.ConfigurationError(err)
		}
		if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
			cfg.Source.Mode = strings.ToLower(mode)
		}

		p, err := buildPipeline(cfg, log)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		res, err := p.Run(ctx, args[0])
		logResult(ctx, log, res, err)
		return err
	},
}

func init() {
	transcribeCmd.Flags().String("mode", "", "Source strategy: auto, youtube or local (default from config)")
	rootCmd.AddCommand(transcribeCmd)
}

// buildPipeline wires every stage from cfg. Credential and mode problems
// are reported as configuration failures before any stage runs.
func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()

	acq, err := source.New(cfg, exec, log)
	if err != nil {
		return nil, pipeline.ConfigurationError(err)
	}

	tr, err := transcriber.New(cfg, log)
	if err != nil {
		return nil, pipeline.ConfigurationError(err)
	}

	return pipeline.New(cfg, acq, normalize.New(cfg, exec, log), tr, log), nil
}

func logResult(ctx context.Context, log logger.Logger, res pipeline.Result, err error) {
	if err != nil {
		kind, ok := pipeline.KindOf(err)
		if !ok {
			kind = "unclassified"
		}
		log.Error(ctx, "Run failed (%s) after %d/%d window(s) in %s: %v",
			kind, res.Completed, res.Windows, res.Elapsed, err)
		return
	}
	log.Info(ctx, "Transcript %s: %d window(s), %.1fs of audio, took %s",
		res.TranscriptPath, res.Windows, res.Duration, res.Elapsed)
}
