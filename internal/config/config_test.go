package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "gemini backends",
			config: Config{
				Transcription: TranscriptionConfig{Backend: "Gemini"},
				Summary:       SummaryConfig{Backend: "gemini"},
			},
			wantErr: false,
		},
		{
			name: "unknown transcription backend",
			config: Config{
				Transcription: TranscriptionConfig{Backend: "deepgram"},
			},
			wantErr: true,
		},
		{
			name: "unknown source mode",
			config: Config{
				Source: SourceConfig{Mode: "ftp"},
			},
			wantErr: true,
		},
		{
			name: "unknown output type",
			config: Config{
				Summary: SummaryConfig{OutputType: "tweet"},
			},
			wantErr: true,
		},
		{
			name: "overlap not smaller than chunk",
			config: Config{
				Summary: SummaryConfig{ChunkSize: 100, ChunkOverlap: ptr(100)},
			},
			wantErr: true,
		},
		{
			name: "chunk size below default overlap",
			config: Config{
				Summary: SummaryConfig{ChunkSize: 300},
			},
			wantErr: true,
		},
		{
			name: "chunk size with explicit smaller overlap",
			config: Config{
				Summary: SummaryConfig{ChunkSize: 300, ChunkOverlap: ptr(50)},
			},
			wantErr: false,
		},
		{
			name: "temperature out of range",
			config: Config{
				Summary: SummaryConfig{Temperature: ptr[float32](3)},
			},
			wantErr: true,
		},
		{
			name: "whisper model with gemini transcription",
			config: Config{
				Transcription: TranscriptionConfig{Backend: BackendGemini, Model: "whisper-1"},
			},
			wantErr: true,
		},
		{
			name: "gpt model with gemini summary",
			config: Config{
				Summary: SummaryConfig{Backend: BackendGemini, Model: "gpt-3.5-turbo"},
			},
			wantErr: true,
		},
		{
			name: "gemini model with openai summary",
			config: Config{
				Summary: SummaryConfig{Model: "gemini-2.5-flash"},
			},
			wantErr: true,
		},
		{
			name: "negative window",
			config: Config{
				Transcription: TranscriptionConfig{WindowSeconds: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcription.WindowSeconds != 600 {
		t.Errorf("WindowSeconds = %v, want 600", cfg.Transcription.WindowSeconds)
	}
	if cfg.Transcription.SampleRate != 16000 || cfg.Transcription.Channels != 1 {
		t.Errorf("normalization target = %d Hz / %d ch, want 16000 / 1",
			cfg.Transcription.SampleRate, cfg.Transcription.Channels)
	}
	if cfg.Transcription.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Transcription.Language)
	}
	if cfg.Transcription.Model != "whisper-1" {
		t.Errorf("Model = %q, want whisper-1", cfg.Transcription.Model)
	}
	if cfg.Paths.Transcript != "transcript.txt" {
		t.Errorf("Transcript = %q, want transcript.txt", cfg.Paths.Transcript)
	}
	if cfg.Summary.ChunkSize != 4000 || *cfg.Summary.ChunkOverlap != 500 || cfg.Summary.Separator != "." {
		t.Errorf("splitter defaults = %d/%d/%q", cfg.Summary.ChunkSize, *cfg.Summary.ChunkOverlap, cfg.Summary.Separator)
	}
	if *cfg.Summary.Temperature != 0.1 {
		t.Errorf("Temperature = %v, want 0.1", *cfg.Summary.Temperature)
	}
	if cfg.Source.Mode != "auto" {
		t.Errorf("Mode = %q, want auto", cfg.Source.Mode)
	}
}

func TestValidateGeminiModels(t *testing.T) {
	cfg := Config{
		Transcription: TranscriptionConfig{Backend: BackendGemini},
		Summary:       SummaryConfig{Backend: BackendGemini},
		Gemini:        GeminiConfig{Model: "gemini-custom"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Transcription.Model != "gemini-custom" || cfg.Summary.Model != "gemini-custom" {
		t.Errorf("models = %q / %q, want gemini-custom", cfg.Transcription.Model, cfg.Summary.Model)
	}
}

func TestValidateKeepsExplicitZero(t *testing.T) {
	cfg := Config{
		Summary: SummaryConfig{Temperature: ptr[float32](0), ChunkOverlap: ptr(0)},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if *cfg.Summary.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", *cfg.Summary.Temperature)
	}
	if *cfg.Summary.ChunkOverlap != 0 {
		t.Errorf("ChunkOverlap = %v, want 0", *cfg.Summary.ChunkOverlap)
	}
}

func TestRequireCredential(t *testing.T) {
	cfg := Config{}
	if err := cfg.RequireCredential(BackendOpenAI); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("RequireCredential(openai) = %v, want ErrMissingCredential", err)
	}
	if err := cfg.RequireCredential(BackendGemini); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("RequireCredential(gemini) = %v, want ErrMissingCredential", err)
	}

	cfg.OpenAI.APIKey = "sk-test"
	cfg.Gemini.APIKeys = []string{"g1"}
	if err := cfg.RequireCredential(BackendOpenAI); err != nil {
		t.Errorf("RequireCredential(openai) = %v", err)
	}
	if err := cfg.RequireCredential(BackendGemini); err != nil {
		t.Errorf("RequireCredential(gemini) = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("GEMINI_API_KEYS", "k1, k2,,")

	tmpfile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
transcription:
  backend: "openai"
  language: "vi"
  window_seconds: 300

paths:
  transcript: "out/transcript.txt"

summary:
  output_type: "article"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(tmpfile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcription.Language != "vi" {
		t.Errorf("Language = %v, want vi", cfg.Transcription.Language)
	}
	if cfg.Transcription.WindowSeconds != 300 {
		t.Errorf("WindowSeconds = %v, want 300", cfg.Transcription.WindowSeconds)
	}
	if cfg.Paths.Transcript != "out/transcript.txt" {
		t.Errorf("Transcript = %v, want out/transcript.txt", cfg.Paths.Transcript)
	}
	if cfg.Summary.OutputType != "article" {
		t.Errorf("OutputType = %v, want article", cfg.Summary.OutputType)
	}
	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want sk-from-env", cfg.OpenAI.APIKey)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "k2" {
		t.Errorf("APIKeys = %v, want [k1 k2]", cfg.Gemini.APIKeys)
	}
}

func TestLoadExplicitZeroes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "summary:\n  temperature: 0\n  chunk_size: 300\n  chunk_overlap: 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg.Summary.Temperature != 0 || *cfg.Summary.ChunkOverlap != 0 || cfg.Summary.ChunkSize != 300 {
		t.Errorf("summary = temp %v, overlap %v, size %v", *cfg.Summary.Temperature, *cfg.Summary.ChunkOverlap, cfg.Summary.ChunkSize)
	}
}

// The shipped config.yaml must follow a backend switch without further edits.
func TestLoadShippedConfigGeminiBackend(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	switched := strings.ReplaceAll(string(data), "backend: openai", "backend: gemini")
	if switched == string(data) {
		t.Fatal("config.yaml has no openai backend lines")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(switched), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transcription.Backend != BackendGemini || cfg.Transcription.Model != "gemini-2.5-flash" {
		t.Errorf("transcription = %s/%s, want gemini/gemini-2.5-flash", cfg.Transcription.Backend, cfg.Transcription.Model)
	}
	if cfg.Summary.Backend != BackendGemini || cfg.Summary.Model != "gemini-2.5-flash" {
		t.Errorf("summary = %s/%s, want gemini/gemini-2.5-flash", cfg.Summary.Backend, cfg.Summary.Model)
	}
}

func TestLoadPinnedModelMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "transcription:\n  backend: gemini\n  model: whisper-1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject whisper-1 with the gemini backend")
	}
}

func TestLoadSingleGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("GEMINI_API_KEY", "solo")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 1 || cfg.Gemini.APIKeys[0] != "solo" {
		t.Errorf("APIKeys = %v, want [solo]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("transcription: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("MEDIASCRIBE_TEST_VAR", "")
	os.Unsetenv("MEDIASCRIBE_TEST_VAR")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MEDIASCRIBE_TEST_VAR=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("MEDIASCRIBE_TEST_VAR"); got != "from-dotenv" {
		t.Errorf("MEDIASCRIBE_TEST_VAR = %q, want from-dotenv", got)
	}
}
