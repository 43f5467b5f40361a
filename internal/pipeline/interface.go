package pipeline

import (
	"context"
	"time"
)

// Pipeline turns a source reference into a transcript file.
type Pipeline interface {
	// Run acquires the source, splits it into windows and transcribes them
	// in order. On failure the returned Result describes the windows that
	// were already written.
	Run(ctx context.Context, reference string) (Result, error)
	// Publish copies the current transcript next to the other outputs and
	// archives the source video. Used by watch mode.
	Publish(ctx context.Context, videoPath string) (string, error)
}

// Result summarizes one run.
type Result struct {
	Reference      string
	AudioPath      string
	Duration       float64
	Windows        int
	Completed      int
	TranscriptPath string
	Elapsed        time.Duration
}
