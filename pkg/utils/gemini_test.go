package utils

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "text parts are joined",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("Day 1\n"), genai.Text("- Museum")}},
			}}},
			want: "Day 1\n- Museum",
		},
		{
			name: "non-text parts are skipped",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{
					genai.Blob{MIMEType: "image/png", Data: []byte{1, 2}},
					genai.Text("Day 1"),
				}},
			}}},
			want: "Day 1",
		},
		{
			name: "only the first candidate is read",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("first")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
			}},
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidateText(tt.resp))
		})
	}
}

func TestNewTextGenerator_ProviderIsCaseInsensitive(t *testing.T) {
	gen, err := NewTextGenerator(context.Background(), "OpenAI", "key", "", "")
	require.NoError(t, err)
	assert.IsType(t, &OpenAITextClient{}, gen)
}
