package source

import "context"

// AudioAsset is a local audio file with a known duration in seconds.
type AudioAsset struct {
	Path     string
	Duration float64
}

// Acquirer resolves a reference (remote video URL or local media file)
// into a local audio asset.
type Acquirer interface {
	Acquire(ctx context.Context, reference string) (AudioAsset, error)
}

// Prober reports the duration of a media file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}
