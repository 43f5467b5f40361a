package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/source"
	"github.com/nguyentantai21042004/mediascribe/internal/watcher"
)

// settleDelay gives the copying process time to finish writing a new file.
const settleDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Transcribe every video dropped into the watch folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Source.Mode = source.ModeLocal

		if err := ensureDirectories(cfg); err != nil {
			return err
		}

		p, err := buildPipeline(cfg, log)
		if err != nil {
			return err
		}

		handler := func(ctx context.Context, videoPath string) error {
			res, err := p.Run(ctx, videoPath)
			logResult(ctx, log, res, err)
			if err != nil {
				return err
			}
			dest, err := p.Publish(ctx, videoPath)
			if err != nil {
				return err
			}
			log.Info(ctx, "Transcript published: %s", dest)
			return nil
		}

		w, err := watcher.New(cfg.Paths.Watch, handler, log, settleDelay)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx := cmd.Context()
		log.Info(ctx, "========================================")
		log.Info(ctx, "mediascribe is watching %s", cfg.Paths.Watch)
		log.Info(ctx, "Transcripts: %s, archived videos: %s", cfg.Paths.Output, cfg.Paths.Archived)
		log.Info(ctx, "Backend: %s (%s, language %s)", cfg.Transcription.Backend, cfg.Transcription.Model, cfg.Transcription.Language)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Info(ctx, "Shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// ensureDirectories creates the watch, output and archive folders
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Watch,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
