package games

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"github.com/yashwanthkasi9182/PlayMate/services/llm/llmtest"
)

const twoTeamsOneMatch = `{
  "teams": [
    {"name": "Team A", "players": ["Ana", "Ben"]},
    {"name": "Team B", "players": ["Cleo", "Dev"], "doubleSidedPlayers": ["Dev"]}
  ],
  "matches": [
    {"match": 1, "team1": "Team A", "team2": "Team B", "time": "Match 1"}
  ],
  "gameRules": ["Play fair"]
}`

func validGenerateRequest() models.GenerateTeamsRequest {
	return models.GenerateTeamsRequest{
		Game:       "Football",
		Mode:       "casual",
		Players:    []string{"Ana", "Ben", "Cleo", "Dev"},
		NumTeams:   2,
		TeamSize:   2,
		NumMatches: 1,
	}
}

func TestMaxPossibleMatches(t *testing.T) {
	for numTeams, want := range map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 4: 6, 5: 10} {
		assert.Equal(t, want, MaxPossibleMatches(numTeams), "numTeams=%d", numTeams)
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.GenerateTeamsRequest)
	}{
		{"no game", func(r *models.GenerateTeamsRequest) { r.Game = "" }},
		{"blank game", func(r *models.GenerateTeamsRequest) { r.Game = "  " }},
		{"no players", func(r *models.GenerateTeamsRequest) { r.Players = nil }},
		{"blank players", func(r *models.GenerateTeamsRequest) { r.Players = []string{"", "  "} }},
		{"zero teams", func(r *models.GenerateTeamsRequest) { r.NumTeams = 0 }},
		{"zero team size", func(r *models.GenerateTeamsRequest) { r.TeamSize = 0 }},
		{"negative matches", func(r *models.GenerateTeamsRequest) { r.NumMatches = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := llmtest.NewStub(llmtest.Text(twoTeamsOneMatch))
			g := NewGenerator(Config{Collaborator: stub})
			req := validGenerateRequest()
			tt.mutate(&req)

			got, err := g.Generate(context.Background(), req)

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			if diff := cmp.Diff(models.FailedGeneration(MsgMissingFields), got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, 0, stub.Calls())
		})
	}
}

func TestGenerateRejectsTooManyMatches(t *testing.T) {
	stub := llmtest.NewStub()
	g := NewGenerator(Config{Collaborator: stub})
	req := validGenerateRequest()
	req.NumTeams = 4
	req.NumMatches = 7

	got, err := g.Generate(context.Background(), req)

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Maximum 6 matches possible with 4 teams", got.Error)
	assert.False(t, got.Success)
	assert.Equal(t, 0, stub.Calls())
}

func TestGenerateSingleTeamHasNoPairings(t *testing.T) {
	stub := llmtest.NewStub()
	g := NewGenerator(Config{Collaborator: stub})
	req := validGenerateRequest()
	req.NumTeams = 1

	got, err := g.Generate(context.Background(), req)

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Maximum 0 matches possible with 1 teams", got.Error)
}

func TestGenerateSuccess(t *testing.T) {
	stub := llmtest.NewStub(llmtest.Text("```json\n" + twoTeamsOneMatch + "\n```"))
	g := NewGenerator(Config{Collaborator: stub})

	got, err := g.Generate(context.Background(), validGenerateRequest())
	require.NoError(t, err)

	want := models.GenerateTeamsResponse{
		Teams: []models.Team{
			{Name: "Team A", Players: []string{"Ana", "Ben"}},
			{Name: "Team B", Players: []string{"Cleo", "Dev"}, DoubleSidedPlayers: []string{"Dev"}},
		},
		Matches:   []models.Match{{Match: 1, Team1: "Team A", Team2: "Team B", Time: "Match 1"}},
		GameRules: []string{"Play fair"},
		Success:   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}

	req := stub.LastRequest()
	assert.Equal(t, llm_constants.GroqModels.Generation, req.Model)
	assert.Equal(t, llm_constants.GenerationTemperature, req.Temperature)
	assert.Equal(t, llm_constants.GenerationMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, generationSystemPrompt, req.Messages[0].Content)
}

func TestGenerateAcceptsIndentedFence(t *testing.T) {
	for _, reply := range []string{
		"\n```json\n" + twoTeamsOneMatch + "\n```",
		"  ```\n" + twoTeamsOneMatch + "\n```\n\n",
	} {
		g := NewGenerator(Config{Collaborator: llmtest.NewStub(llmtest.Text(reply))})

		got, err := g.Generate(context.Background(), validGenerateRequest())
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Len(t, got.Teams, 2)
		assert.Len(t, got.Matches, 1)
	}
}

func TestGeneratePromptReflectsRequest(t *testing.T) {
	tests := []struct {
		name       string
		players    []string
		needsToss  bool
		contain    []string
		notContain []string
	}{
		{
			name:       "exact roster",
			players:    []string{" Ana ", "Ben", "", "Cleo", "Dev"},
			contain:    []string{"- Available players: Ana, Ben, Cleo, Dev\n"},
			notContain: []string{"multiple teams due to", "Extra players", "toss"},
		},
		{
			name:    "short handed",
			players: []string{"Ana", "Ben", "Cleo"},
			contain: []string{"fewer than 4 players"},
		},
		{
			name:    "surplus",
			players: []string{"Ana", "Ben", "Cleo", "Dev", "Eli"},
			contain: []string{"Extra players should be distributed evenly"},
		},
		{
			name:      "toss",
			players:   []string{"Ana", "Ben", "Cleo", "Dev"},
			needsToss: true,
			contain:   []string{"Include toss results", `"toss": "Team that won the toss"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := llmtest.NewStub(llmtest.Text(twoTeamsOneMatch))
			g := NewGenerator(Config{Collaborator: stub})
			req := validGenerateRequest()
			req.Players = tt.players
			req.NeedsToss = tt.needsToss

			_, err := g.Generate(context.Background(), req)
			require.NoError(t, err)

			prompt := stub.LastRequest().Messages[1].Content
			for _, s := range tt.contain {
				assert.Contains(t, prompt, s)
			}
			for _, s := range tt.notContain {
				assert.NotContains(t, prompt, s)
			}
		})
	}
}

func TestGenerateRejectsBadReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply llmtest.Reply
		want  string
	}{
		{"empty", llmtest.Text(""), MsgNoResponse},
		{"prose", llmtest.Text("Here are your teams!"), MsgInvalidJSON},
		{"missing teams", llmtest.Text(`{"matches": [], "gameRules": []}`), MsgInvalidStructure},
		{"null matches", llmtest.Text(`{"teams": [], "matches": null, "gameRules": []}`), MsgInvalidStructure},
		{"missing rules", llmtest.Text(`{"teams": [], "matches": [{"match":1,"team1":"A","team2":"B","time":"1"}]}`), MsgInvalidStructure},
		{"teams not a list", llmtest.Text(`{"teams": "A,B", "matches": [], "gameRules": []}`), MsgInvalidStructure},
		{"too few matches", llmtest.Text(`{"teams": [], "matches": [], "gameRules": []}`), MsgInvalidMatchCount},
		{"upstream failure", llmtest.Fail(errors.New("connection reset")), MsgGenerateFailed},
		{"auth failure", llmtest.Fail(&llm.AuthError{Provider: "groq", Message: "bad key"}), "groq authentication failed: bad key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := llmtest.NewStub(tt.reply)
			g := NewGenerator(Config{Collaborator: stub})

			got, err := g.Generate(context.Background(), validGenerateRequest())

			require.Error(t, err)
			assert.False(t, IsValidationError(err))
			if diff := cmp.Diff(models.FailedGeneration(tt.want), got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateMatchCountMismatch(t *testing.T) {
	reply := `{"teams": [{"name":"A","players":["Ana"]},{"name":"B","players":["Ben"]},{"name":"C","players":["Cleo"]}],
		"matches": [{"match":1,"team1":"A","team2":"B","time":"1"},{"match":2,"team1":"B","team2":"C","time":"2"}],
		"gameRules": []}`
	stub := llmtest.NewStub(llmtest.Text(reply))
	g := NewGenerator(Config{Collaborator: stub})
	req := validGenerateRequest()
	req.NumTeams = 3
	req.TeamSize = 1
	req.NumMatches = 3

	got, err := g.Generate(context.Background(), req)

	var schemaErr *InvalidSchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.False(t, got.Success)
	assert.Equal(t, MsgInvalidMatchCount, got.Error)
	assert.Empty(t, got.Teams)
}

func TestGenerateKeepsUnbalancedReplies(t *testing.T) {
	// A self-pairing and an unknown double-sided player are logged, not rejected
	reply := `{"teams": [{"name":"A","players":null,"doubleSidedPlayers":["Zed"]}],
		"matches": [{"match":1,"team1":"A","team2":"A","time":"1"}],
		"gameRules": ["x"]}`
	stub := llmtest.NewStub(llmtest.Text(reply))
	g := NewGenerator(Config{Collaborator: stub})

	got, err := g.Generate(context.Background(), validGenerateRequest())

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "A", got.Matches[0].Team2)
	assert.NotNil(t, got.Teams[0].Players)
}
