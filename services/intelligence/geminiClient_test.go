package ai

import (
	"context"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestResponseText_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"timetable":`), genai.Text(`[]}`)}}},
			nil,
			{Content: nil},
		},
	}
	require.Equal(t, `{"timetable":[]}`, responseText(resp))
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "  ", GeminiOptions{})
	require.Error(t, err)
}
