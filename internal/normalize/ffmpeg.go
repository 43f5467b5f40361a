package normalize

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/mediascribe/internal/segment"
	"github.com/nguyentantai21042004/mediascribe/internal/source"
)

// ShouldSlice reports whether w selects a sub-interval. Anything else means
// the whole asset is normalized.
func ShouldSlice(w segment.Window) bool {
	return w.Start >= 0 && w.End > 0
}

// Normalize extracts the window from the asset and converts it to mono
// 16-bit PCM WAV at the configured sample rate.
func (n *implNormalizer) Normalize(ctx context.Context, asset source.AudioAsset, w segment.Window) (AudioSlice, error) {
	// -ss/-to after -i: sample-accurate cut on the decoded stream
	// -ar: target sample rate, -ac: channel count (down-mix)
	// -c:a pcm_s16le: uncompressed 16-bit little-endian
	args := []string{"-y", "-i", asset.Path}

	if ShouldSlice(w) {
		args = append(args,
			"-ss", formatSeconds(w.Start),
			"-to", formatSeconds(w.End),
		)
		n.logger.Debug(ctx, "Normalizing window %d [%s, %s)", w.Index, formatSeconds(w.Start), formatSeconds(w.End))
	} else {
		n.logger.Debug(ctx, "Normalizing whole asset (window %d not sliceable)", w.Index)
	}

	args = append(args,
		"-ar", strconv.Itoa(n.sampleRate),
		"-ac", strconv.Itoa(n.channels),
		"-c:a", "pcm_s16le",
		n.outputPath,
	)

	if _, err := n.executor.Execute(ctx, n.ffmpegPath, args...); err != nil {
		return AudioSlice{}, fmt.Errorf("ffmpeg normalize window %d: %w", w.Index, err)
	}

	return AudioSlice{Path: n.outputPath, Window: w}, nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
