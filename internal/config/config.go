package config

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by transcription.backend and summary.backend.
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// ErrMissingCredential is returned when the selected backend has no API key.
var ErrMissingCredential = errors.New("missing credential")

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Source        SourceConfig        `yaml:"source"`
	Paths         PathsConfig         `yaml:"paths"`
	Summary       SummaryConfig       `yaml:"summary"`
	Logging       LoggingConfig       `yaml:"logging"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
}

type TranscriptionConfig struct {
	Backend       string  `yaml:"backend"`
	Model         string  `yaml:"model"`
	Language      string  `yaml:"language"`
	WindowSeconds float64 `yaml:"window_seconds"`
	SampleRate    int     `yaml:"sample_rate"`
	Channels      int     `yaml:"channels"`
}

type SourceConfig struct {
	Mode         string `yaml:"mode"`
	YtDlpPath    string `yaml:"ytdlp_path"`
	FFmpegPath   string `yaml:"ffmpeg_path"`
	FFprobePath  string `yaml:"ffprobe_path"`
	AudioQuality string `yaml:"audio_quality"`
}

type PathsConfig struct {
	Transcript string `yaml:"transcript"`
	InputAudio string `yaml:"input_audio"`
	SliceAudio string `yaml:"slice_audio"`
	Summary    string `yaml:"summary"`
	Steps      string `yaml:"steps"`
	Watch      string `yaml:"watch"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

// SummaryConfig uses pointers where zero is a valid setting: a nil
// Temperature or ChunkOverlap means unset and gets the default.
type SummaryConfig struct {
	Backend        string   `yaml:"backend"`
	Model          string   `yaml:"model"`
	Temperature    *float32 `yaml:"temperature"`
	ChunkSize      int      `yaml:"chunk_size"`
	ChunkOverlap   *int     `yaml:"chunk_overlap"`
	Separator      string   `yaml:"separator"`
	TokenMax       int      `yaml:"token_max"`
	OutputType     string   `yaml:"output_type"`
	GeneralContext string   `yaml:"general_context"`
	Context        string   `yaml:"context"`
	Docx           bool     `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OpenAIConfig holds the key read from OPENAI_API_KEY. BaseURL is optional.
type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
}

// GeminiConfig holds the keys read from GEMINI_API_KEYS / GEMINI_API_KEY.
type GeminiConfig struct {
	APIKeys []string `yaml:"-"`
	Model   string   `yaml:"model"`
}

// Validate checks enumerated values and fills defaults for everything left empty.
func (c *Config) Validate() error {
	c.Transcription.Backend = strings.ToLower(c.Transcription.Backend)
	c.Summary.Backend = strings.ToLower(c.Summary.Backend)
	c.Source.Mode = strings.ToLower(c.Source.Mode)

	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendOpenAI
	}
	if c.Summary.Backend == "" {
		c.Summary.Backend = BackendOpenAI
	}
	if !validBackend(c.Transcription.Backend) {
		return fmt.Errorf("transcription.backend must be openai or gemini, got %q", c.Transcription.Backend)
	}
	if !validBackend(c.Summary.Backend) {
		return fmt.Errorf("summary.backend must be openai or gemini, got %q", c.Summary.Backend)
	}
	if c.Transcription.WindowSeconds < 0 {
		return fmt.Errorf("transcription.window_seconds must be positive")
	}

	switch c.Source.Mode {
	case "":
		c.Source.Mode = "auto"
	case "auto", "youtube", "local":
	default:
		return fmt.Errorf("source.mode must be auto, youtube or local, got %q", c.Source.Mode)
	}

	switch c.Summary.OutputType {
	case "":
		c.Summary.OutputType = "blog"
	case "blog", "article":
	default:
		return fmt.Errorf("summary.output_type must be blog or article, got %q", c.Summary.OutputType)
	}

	c.applyDefaults()

	if c.Summary.ChunkSize < 0 || *c.Summary.ChunkOverlap < 0 {
		return fmt.Errorf("summary.chunk_size and summary.chunk_overlap must not be negative")
	}
	if *c.Summary.ChunkOverlap >= c.Summary.ChunkSize {
		return fmt.Errorf("summary.chunk_overlap (%d) must be smaller than summary.chunk_size (%d)",
			*c.Summary.ChunkOverlap, c.Summary.ChunkSize)
	}
	if t := *c.Summary.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("summary.temperature must be between 0 and 2, got %v", t)
	}
	if err := checkModel("transcription", c.Transcription.Backend, c.Transcription.Model); err != nil {
		return err
	}
	if err := checkModel("summary", c.Summary.Backend, c.Summary.Model); err != nil {
		return err
	}
	return nil
}

// checkModel catches a model left over from the other backend, such as
// whisper-1 after switching transcription.backend to gemini.
func checkModel(section, backend, model string) error {
	m := strings.ToLower(model)
	switch backend {
	case BackendGemini:
		if strings.HasPrefix(m, "whisper") || strings.HasPrefix(m, "gpt-") {
			return fmt.Errorf("%s.model %q is an OpenAI model but %s.backend is gemini", section, model, section)
		}
	case BackendOpenAI:
		if strings.HasPrefix(m, "gemini") {
			return fmt.Errorf("%s.model %q is a Gemini model but %s.backend is openai", section, model, section)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Transcription.Model == "" {
		if c.Transcription.Backend == BackendGemini {
			c.Transcription.Model = c.Gemini.Model
		} else {
			c.Transcription.Model = "whisper-1"
		}
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "en"
	}
	if c.Transcription.WindowSeconds == 0 {
		c.Transcription.WindowSeconds = 600
	}
	if c.Transcription.SampleRate == 0 {
		c.Transcription.SampleRate = 16000
	}
	if c.Transcription.Channels == 0 {
		c.Transcription.Channels = 1
	}

	if c.Source.YtDlpPath == "" {
		c.Source.YtDlpPath = "yt-dlp"
	}
	if c.Source.FFmpegPath == "" {
		c.Source.FFmpegPath = "ffmpeg"
	}
	if c.Source.FFprobePath == "" {
		c.Source.FFprobePath = "ffprobe"
	}
	if c.Source.AudioQuality == "" {
		c.Source.AudioQuality = "192K"
	}

	if c.Paths.Transcript == "" {
		c.Paths.Transcript = "transcript.txt"
	}
	if c.Paths.InputAudio == "" {
		c.Paths.InputAudio = "input_audio.wav"
	}
	if c.Paths.SliceAudio == "" {
		c.Paths.SliceAudio = "converted_audio.wav"
	}
	if c.Paths.Summary == "" {
		c.Paths.Summary = "output.txt"
	}
	if c.Paths.Steps == "" {
		c.Paths.Steps = "steps.txt"
	}
	if c.Paths.Watch == "" {
		c.Paths.Watch = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Summary.Model == "" {
		if c.Summary.Backend == BackendGemini {
			c.Summary.Model = c.Gemini.Model
		} else {
			c.Summary.Model = "gpt-3.5-turbo"
		}
	}
	if c.Summary.Temperature == nil {
		c.Summary.Temperature = ptr[float32](0.1)
	}
	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 4000
	}
	if c.Summary.ChunkOverlap == nil {
		c.Summary.ChunkOverlap = ptr(500)
	}
	if c.Summary.Separator == "" {
		c.Summary.Separator = "."
	}
	if c.Summary.TokenMax == 0 {
		c.Summary.TokenMax = 12000
	}
	if c.Summary.GeneralContext == "" {
		c.Summary.GeneralContext = "You are developing content for a student organization that specializes in machine learning."
	}
	if c.Summary.Context == "" {
		c.Summary.Context = "a recorded technical talk"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// RequireCredential fails fast when backend has no API key configured.
func (c *Config) RequireCredential(backend string) error {
	switch backend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingCredential)
		}
	case BackendGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("%w: GEMINI_API_KEYS or GEMINI_API_KEY is not set", ErrMissingCredential)
		}
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func validBackend(b string) bool {
	return b == BackendOpenAI || b == BackendGemini
}
