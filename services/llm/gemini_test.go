package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiContents(t *testing.T) {
	type turn struct {
		role string
		text string
	}
	tests := []struct {
		name       string
		messages   []Message
		wantSystem string
		wantTurns  []turn
	}{
		{
			name:      "no system message",
			messages:  []Message{{Role: RoleUser, Content: "How many players?"}},
			wantTurns: []turn{{string(genai.RoleUser), "How many players?"}},
		},
		{
			name: "system messages joined",
			messages: []Message{
				{Role: RoleSystem, Content: "You are a referee."},
				{Role: RoleUser, Content: "Offside?"},
				{Role: RoleSystem, Content: "Answer briefly."},
			},
			wantSystem: "You are a referee.\n\nAnswer briefly.",
			wantTurns:  []turn{{string(genai.RoleUser), "Offside?"}},
		},
		{
			name: "assistant turns become model turns in order",
			messages: []Message{
				{Role: RoleSystem, Content: "Rules only."},
				{Role: RoleUser, Content: "first"},
				{Role: RoleAssistant, Content: "second"},
				{Role: RoleUser, Content: "third"},
			},
			wantSystem: "Rules only.",
			wantTurns: []turn{
				{string(genai.RoleUser), "first"},
				{string(genai.RoleModel), "second"},
				{string(genai.RoleUser), "third"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, contents := geminiContents(tt.messages)

			assert.Equal(t, tt.wantSystem, system)
			require.Len(t, contents, len(tt.wantTurns))
			for i, want := range tt.wantTurns {
				assert.Equal(t, want.role, contents[i].Role)
				require.Len(t, contents[i].Parts, 1)
				assert.Equal(t, want.text, contents[i].Parts[0].Text)
			}
		})
	}
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), GeminiConfig{}, nil)
	assert.Error(t, err)
}
