package normalize

import (
	"context"

	"github.com/nguyentantai21042004/mediascribe/internal/segment"
	"github.com/nguyentantai21042004/mediascribe/internal/source"
)

// AudioSlice is the normalized audio for one window, stored at Path.
// The file is overwritten by the next Normalize call.
type AudioSlice struct {
	Path   string
	Window segment.Window
}

// Normalizer cuts a window out of an asset and resamples it.
type Normalizer interface {
	Normalize(ctx context.Context, asset source.AudioAsset, window segment.Window) (AudioSlice, error)
}
