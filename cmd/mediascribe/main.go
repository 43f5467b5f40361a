package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mediascribe",
	Short: "Transcribe long videos in fixed windows and summarize the result",
	Long: `mediascribe downloads or extracts the audio track of a video, cuts it into
10 minute windows, transcribes each window and appends the text to a single
transcript file. The transcript can then be turned into a blog post or a
wiki article with a map-reduce summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the config file and builds the logger it describes.
func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewWithOptions(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	return cfg, log, nil
}
