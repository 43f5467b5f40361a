package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when Gemini answers without any text part.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// filePollInterval is how often an uploaded file is checked until it is ACTIVE.
const filePollInterval = 2 * time.Second

// Generate calls the model, moving to the next API key on 429 / quota errors.
// Each key is tried at most once per call.
func (g *implGenerator) Generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	return g.withRotation(ctx, func(client *genai.Client) (string, error) {
		return generate(ctx, client, model, contents, cfg)
	})
}

func (g *implGenerator) GenerateWithFile(ctx context.Context, model, path, mimeType string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, error) {
	return g.withRotation(ctx, func(client *genai.Client) (string, error) {
		file, err := client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", path, err)
		}
		defer func() {
			if _, err := client.Files.Delete(context.WithoutCancel(ctx), file.Name, nil); err != nil {
				g.logger.Warn(ctx, "Failed to delete uploaded file %s: %v", file.Name, err)
			}
		}()
		g.logger.Debug(ctx, "Uploaded %s as %s", path, file.Name)

		file, err = waitActive(ctx, client, file)
		if err != nil {
			return "", err
		}
		return generate(ctx, client, model, FileContents(file, parts), cfg)
	})
}

// FileContents builds a single user turn referencing file by URI, then parts.
func FileContents(file *genai.File, parts []*genai.Part) []*genai.Content {
	all := append([]*genai.Part{genai.NewPartFromURI(file.URI, file.MIMEType)}, parts...)
	return []*genai.Content{genai.NewContentFromParts(all, genai.RoleUser)}
}

// withRotation runs call with a client for the current key. Quota errors
// move to the next key, other errors are returned as they are.
func (g *implGenerator) withRotation(ctx context.Context, call func(*genai.Client) (string, error)) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", errors.New("no Gemini API keys configured")
	}

	var lastErr error
	for range len(g.apiKeys) {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		text, err := call(client)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", err
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func generate(ctx context.Context, client *genai.Client, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := responseText(result)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// waitActive polls an uploaded file until the service has finished processing it.
func waitActive(ctx context.Context, client *genai.Client, file *genai.File) (*genai.File, error) {
	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(filePollInterval):
		}
		f, err := client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("get file %s: %w", file.Name, err)
		}
		file = f
	}
	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("file %s failed processing", file.Name)
	}
	return file, nil
}

func (g *implGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
