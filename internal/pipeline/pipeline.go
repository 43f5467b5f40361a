package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/mediascribe/internal/accumulator"
	"github.com/nguyentantai21042004/mediascribe/internal/segment"
)

// Run orchestrates the whole transcription pipeline for one reference
func (p *implPipeline) Run(ctx context.Context, reference string) (res Result, err error) {
	startTime := time.Now()
	res = Result{
		Reference:      reference,
		TranscriptPath: p.cfg.Paths.Transcript,
	}
	defer func() { res.Elapsed = time.Since(startTime) }()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcription: %s", reference)
	p.logger.Info(ctx, "========================================")

	// Step 1: Acquire local audio
	asset, err := p.acquirer.Acquire(ctx, reference)
	if err != nil {
		return res, failure(ctx, KindAcquisition, -1, err)
	}
	res.AudioPath = asset.Path
	res.Duration = asset.Duration

	// Step 2: Segment
	windows := segment.Split(asset.Duration, p.cfg.Transcription.WindowSeconds)
	res.Windows = len(windows)
	p.logger.Info(ctx, "Audio duration %.2fs -> %d window(s) of %.0fs", asset.Duration, len(windows), p.cfg.Transcription.WindowSeconds)

	// Step 3: Reset the transcript before the first fragment
	acc := accumulator.New(p.cfg.Paths.Transcript)
	if err := acc.Reset(); err != nil {
		return res, stageError(KindOutput, -1, err)
	}

	// Step 4: Normalize, transcribe and append each window in order
	for _, w := range windows {
		if err := ctx.Err(); err != nil {
			return res, stageError(KindCancelled, w.Index, err)
		}

		slice, err := p.normalizer.Normalize(ctx, asset, w)
		if err != nil {
			return res, failure(ctx, KindNormalization, w.Index, err)
		}

		text, err := p.transcriber.Transcribe(ctx, slice)
		if err != nil {
			return res, failure(ctx, KindTranscription, w.Index, err)
		}

		if err := acc.Append(text); err != nil {
			return res, stageError(KindOutput, w.Index, err)
		}
		res.Completed++

		p.logger.Info(ctx, "[%d/%d] Window [%.0fs, %.0fs) transcribed (%d chars)",
			w.Index+1, len(windows), w.Start, w.End, len(text))
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Transcription completed: %s", res.TranscriptPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return res, nil
}
