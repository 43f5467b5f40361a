package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/pkg/executor"
)

var reYouTube = regexp.MustCompile(`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/(watch\?v=|embed/|v/|.+\?v=)?([^&=%\?]{11})`)

// IsYouTubeURL reports whether reference looks like a YouTube video link.
func IsYouTubeURL(reference string) bool {
	return reYouTube.MatchString(strings.TrimSpace(reference))
}

type autoAcquirer struct {
	youtube Acquirer
	local   Acquirer
}

func (a *autoAcquirer) Acquire(ctx context.Context, reference string) (AudioAsset, error) {
	if IsYouTubeURL(reference) {
		return a.youtube.Acquire(ctx, reference)
	}
	return a.local.Acquire(ctx, reference)
}

// youtubeAcquirer downloads the best audio stream with yt-dlp and has it
// transcoded to WAV.
type youtubeAcquirer struct {
	executor     executor.Executor
	logger       logger.Logger
	prober       Prober
	binary       string
	ffmpegPath   string
	audioQuality string
	outputPath   string
}

func (y *youtubeAcquirer) Acquire(ctx context.Context, reference string) (AudioAsset, error) {
	// yt-dlp runs next to the output so its .part files stay there too
	dir := filepath.Dir(y.outputPath)
	name := strings.TrimSuffix(filepath.Base(y.outputPath), filepath.Ext(y.outputPath))
	audioPath := filepath.Join(dir, name+".wav")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return AudioAsset{}, fmt.Errorf("create audio dir: %w", err)
	}
	binary, err := absTool(y.binary)
	if err != nil {
		return AudioAsset{}, err
	}
	ffmpegPath, err := absTool(y.ffmpegPath)
	if err != nil {
		return AudioAsset{}, err
	}

	y.logger.Info(ctx, "Downloading audio: %s", reference)

	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "wav",
		"--audio-quality", y.audioQuality,
		"--no-playlist",
		"--force-overwrites",
		"-o", name + ".%(ext)s",
	}
	if ffmpegPath != "" && ffmpegPath != "ffmpeg" {
		args = append(args, "--ffmpeg-location", ffmpegPath)
	}
	args = append(args, reference)

	if _, err := y.executor.ExecuteInDir(ctx, dir, binary, args...); err != nil {
		return AudioAsset{}, fmt.Errorf("yt-dlp download: %w", err)
	}
	if _, err := os.Stat(audioPath); err != nil {
		return AudioAsset{}, fmt.Errorf("downloaded audio missing: %w", err)
	}

	return probe(ctx, y.prober, y.logger, audioPath)
}

// absTool resolves a tool path that names a directory, such as ./bin/ffmpeg,
// against the current directory. Bare names are left for the PATH lookup.
func absTool(path string) (string, error) {
	if path == "" || filepath.Base(path) == path {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// localAcquirer demuxes the audio track of a local video into WAV.
type localAcquirer struct {
	executor   executor.Executor
	logger     logger.Logger
	prober     Prober
	ffmpegPath string
	outputPath string
}

func (l *localAcquirer) Acquire(ctx context.Context, reference string) (AudioAsset, error) {
	info, err := os.Stat(reference)
	if err != nil {
		return AudioAsset{}, fmt.Errorf("source file: %w", err)
	}
	if info.IsDir() {
		return AudioAsset{}, fmt.Errorf("source file: %s is a directory", reference)
	}

	l.logger.Info(ctx, "Extracting audio track: %s", reference)

	// -vn: drop video, pcm_s16le keeps the WAV lossless for later slicing
	args := []string{
		"-y",
		"-i", reference,
		"-vn",
		"-c:a", "pcm_s16le",
		l.outputPath,
	}
	if _, err := l.executor.Execute(ctx, l.ffmpegPath, args...); err != nil {
		return AudioAsset{}, fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return probe(ctx, l.prober, l.logger, l.outputPath)
}

func probe(ctx context.Context, prober Prober, log logger.Logger, path string) (AudioAsset, error) {
	duration, err := prober.Duration(ctx, path)
	if err != nil {
		return AudioAsset{}, fmt.Errorf("probe duration: %w", err)
	}
	log.Info(ctx, "Audio ready: %s (%.2fs)", path, duration)
	return AudioAsset{Path: path, Duration: duration}, nil
}

type ffprobe struct {
	executor executor.Executor
	binary   string
}

func (f *ffprobe) Duration(ctx context.Context, path string) (float64, error) {
	out, err := f.executor.Execute(ctx, f.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	raw := strings.TrimSpace(out)
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}
