package transcriber

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/mediascribe/internal/config"
	"github.com/nguyentantai21042004/mediascribe/internal/gemini"
	"github.com/nguyentantai21042004/mediascribe/internal/logger"
	"github.com/nguyentantai21042004/mediascribe/internal/normalize"
	"github.com/nguyentantai21042004/mediascribe/internal/segment"
)

func writeSlice(t *testing.T) normalize.AudioSlice {
	t.Helper()
	path := filepath.Join(t.TempDir(), "converted_audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVEfmt "), 0644))
	return normalize.AudioSlice{Path: path, Window: segment.Window{Index: 0, Start: 0, End: 600}}
}

func TestOpenAITranscribe(t *testing.T) {
	var gotModel, gotLanguage string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")

		f, _, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		gotFile, _ = io.ReadAll(f)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello from window zero"}`))
	}))
	defer srv.Close()

	tr := NewOpenAI("sk-test", srv.URL+"/v1", "whisper-1", "en", logger.New("error"))
	text, err := tr.Transcribe(context.Background(), writeSlice(t))
	require.NoError(t, err)

	assert.Equal(t, "hello from window zero", text)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, "RIFF....WAVEfmt ", string(gotFile))
}

func TestOpenAITranscribeServiceError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
	}))
	defer srv.Close()

	tr := NewOpenAI("sk-test", srv.URL+"/v1", "whisper-1", "en", logger.New("error"))
	_, err := tr.Transcribe(context.Background(), writeSlice(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai transcription")
	assert.Equal(t, 1, calls, "failures are not retried")
}

func TestOpenAITranscribeMissingSlice(t *testing.T) {
	tr := NewOpenAI("sk-test", "http://127.0.0.1:1/v1", "whisper-1", "en", logger.New("error"))
	_, err := tr.Transcribe(context.Background(), normalize.AudioSlice{Path: filepath.Join(t.TempDir(), "nope.wav")})
	assert.Error(t, err)
}

type fakeGenerator struct {
	model    string
	uploaded string
	contents []*genai.Content
	text     string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	f.model = model
	f.contents = contents
	return f.text, f.err
}

// GenerateWithFile stands in for the upload with a files/ URI.
func (f *fakeGenerator) GenerateWithFile(ctx context.Context, model, path, mimeType string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	f.uploaded = path
	file := &genai.File{Name: "files/slice", URI: "https://generativelanguage.googleapis.com/v1beta/files/slice", MIMEType: mimeType}
	return f.Generate(ctx, model, gemini.FileContents(file, parts), cfg)
}

func TestGeminiTranscribe(t *testing.T) {
	gen := &fakeGenerator{text: "xin chao"}
	tr := NewGemini(gen, "gemini-2.5-flash", "vi", logger.New("error"))

	text, err := tr.Transcribe(context.Background(), writeSlice(t))
	require.NoError(t, err)
	assert.Equal(t, "xin chao", text)
	assert.Equal(t, "gemini-2.5-flash", gen.model)

	require.Len(t, gen.contents, 1)
	parts := gen.contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "audio/wav", parts[0].InlineData.MIMEType)
	assert.Contains(t, parts[1].Text, `"vi"`)
	assert.Empty(t, gen.uploaded)
}

func TestGeminiTranscribeFullWindowUploads(t *testing.T) {
	// 600 s at 16 kHz mono s16le plus the WAV header
	slice := writeSlice(t)
	require.NoError(t, os.Truncate(slice.Path, 44+600*16000*2))

	gen := &fakeGenerator{text: "long window"}
	tr := NewGemini(gen, "gemini-2.5-flash", "en", logger.New("error"))

	text, err := tr.Transcribe(context.Background(), slice)
	require.NoError(t, err)
	assert.Equal(t, "long window", text)
	assert.Equal(t, slice.Path, gen.uploaded)

	require.Len(t, gen.contents, 1)
	parts := gen.contents[0].Parts
	require.Len(t, parts, 2)
	assert.Nil(t, parts[0].InlineData, "a full window must not be sent inline")
	require.NotNil(t, parts[0].FileData)
	assert.Contains(t, parts[0].FileData.FileURI, "files/slice")
	assert.Equal(t, "audio/wav", parts[0].FileData.MIMEType)
	assert.Contains(t, parts[1].Text, `"en"`)
}

func TestGeminiTranscribeMissingSlice(t *testing.T) {
	gen := &fakeGenerator{}
	tr := NewGemini(gen, "gemini-2.5-flash", "en", logger.New("error"))

	_, err := tr.Transcribe(context.Background(), normalize.AudioSlice{Path: filepath.Join(t.TempDir(), "nope.wav")})
	assert.Error(t, err)
	assert.Nil(t, gen.contents)
}

func TestGeminiTranscribeError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("all API keys exhausted")}
	tr := NewGemini(gen, "gemini-2.5-flash", "en", logger.New("error"))

	_, err := tr.Transcribe(context.Background(), writeSlice(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini transcription")
}

func TestNewRequiresCredential(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())

	_, err := New(cfg, logger.New("error"))
	assert.ErrorIs(t, err, config.ErrMissingCredential)

	cfg.OpenAI.APIKey = "sk-test"
	tr, err := New(cfg, logger.New("error"))
	require.NoError(t, err)
	assert.IsType(t, &openAITranscriber{}, tr)

	cfg.Transcription.Backend = config.BackendGemini
	_, err = New(cfg, logger.New("error"))
	assert.ErrorIs(t, err, config.ErrMissingCredential)

	cfg.Gemini.APIKeys = []string{"g"}
	tr, err = New(cfg, logger.New("error"))
	require.NoError(t, err)
	assert.IsType(t, &geminiTranscriber{}, tr)
}
