package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Publish copies the transcript to <output>/<video name>.txt and moves the
// video into the archived folder. A failed archive move is logged, not returned.
func (p *implPipeline) Publish(ctx context.Context, videoPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	dest := filepath.Join(p.cfg.Paths.Output, base+".txt")

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	p.logger.Info(ctx, "Copying transcript to output: %s -> %s", p.cfg.Paths.Transcript, dest)
	if err := copyFile(p.cfg.Paths.Transcript, dest); err != nil {
		return "", fmt.Errorf("copy transcript: %w", err)
	}

	if err := p.moveToArchived(ctx, videoPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	return dest, nil
}

// moveToArchived moves the processed video into the archived folder
func (p *implPipeline) moveToArchived(ctx context.Context, videoPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(videoPath))
	p.logger.Info(ctx, "Archiving: %s -> %s", videoPath, destPath)

	if err := os.Rename(videoPath, destPath); err != nil {
		// cross-device rename, fall back to copy + remove
		if err := copyFile(videoPath, destPath); err != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if err := os.Remove(videoPath); err != nil {
			return fmt.Errorf("remove original: %w", err)
		}
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	return out.Close()
}
