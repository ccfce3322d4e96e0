// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyCompletion is returned when the model answers without any candidate text.
var ErrEmptyCompletion = errors.New("model returned no candidates")

// TextGenerator produces free-form text for a prompt with the named model.
type TextGenerator interface {
	GenerateContent(ctx context.Context, modelName, prompt string) (string, error)
}

// GeminiOptions tunes model construction.
type GeminiOptions struct {
	// JSONMode asks the API to answer with application/json.
	JSONMode bool
}

// GeminiClient is built once at startup and shared by all requests.
type GeminiClient struct {
	client *genai.Client
	opts   GeminiOptions
}

func NewGeminiClient(ctx context.Context, apiKey string, opts GeminiOptions) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, opts: opts}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, modelName, prompt string) (string, error) {
	model := g.client.GenerativeModel(modelName)
	if g.opts.JSONMode {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}
	return responseText(resp), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return sb.String()
}
