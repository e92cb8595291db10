package games

import (
	"context"
	"fmt"
	"strings"

	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"go.uber.org/zap"
)

// Generator asks the collaborator for team rosters and a match schedule.
type Generator struct {
	caller
}

// NewGenerator creates a Generator
func NewGenerator(cfg Config) *Generator {
	return &Generator{caller: newCaller(cfg)}
}

// MaxPossibleMatches is the number of distinct pairings of numTeams teams
func MaxPossibleMatches(numTeams int) int {
	if numTeams < 2 {
		return 0
	}
	return numTeams * (numTeams - 1) / 2
}

// Generate validates the request, calls the collaborator once and checks the
// shape of its answer. Balance and pairing rules are left to the model; a
// reply that breaks them is logged but still returned.
func (g *Generator) Generate(ctx context.Context, req models.GenerateTeamsRequest) (models.GenerateTeamsResponse, error) {
	params, err := checkGenerateRequest(req)
	if err != nil {
		return models.FailedGeneration(err.Error()), err
	}

	text, err := g.complete(ctx, OperationGenerate, llm.CompletionRequest{
		Model: g.models.Generation,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: generationSystemPrompt},
			{Role: llm.RoleUser, Content: generationPrompt(params)},
		},
		Temperature: llm_constants.GenerationTemperature,
		MaxTokens:   llm_constants.GenerationMaxTokens,
	})
	if err != nil {
		return g.fail(params, fmt.Errorf("generation request failed: %w", err))
	}

	resp, err := parseGeneration(text, params.numMatches)
	if err != nil {
		return g.fail(params, err)
	}

	g.warnOnSuspiciousResult(params, resp)
	return resp, nil
}

func (g *Generator) fail(params generationParams, err error) (models.GenerateTeamsResponse, error) {
	g.log.Warn("team generation failed",
		zap.String("game", params.game),
		zap.Int("players", len(params.players)),
		zap.Error(err),
	)
	return models.FailedGeneration(PublicMessage(err, MsgGenerateFailed)), err
}

func checkGenerateRequest(req models.GenerateTeamsRequest) (generationParams, error) {
	players := make([]string, 0, len(req.Players))
	for _, p := range req.Players {
		if name := strings.TrimSpace(p); name != "" {
			players = append(players, name)
		}
	}

	game := strings.TrimSpace(req.Game)
	if game == "" || len(players) == 0 || req.NumTeams <= 0 || req.TeamSize <= 0 || req.NumMatches <= 0 {
		return generationParams{}, &ValidationError{Message: MsgMissingFields}
	}

	maxMatches := MaxPossibleMatches(req.NumTeams)
	if req.NumMatches > maxMatches {
		return generationParams{}, &ValidationError{Message: fmt.Sprintf(msgMaxMatches, maxMatches, req.NumTeams)}
	}

	minRequired := req.NumTeams * req.TeamSize
	return generationParams{
		game:               game,
		players:            players,
		numTeams:           req.NumTeams,
		teamSize:           req.TeamSize,
		numMatches:         req.NumMatches,
		needsToss:          req.NeedsToss,
		minRequiredPlayers: minRequired,
		hasExtraPlayers:    len(players) > minRequired,
		needsDoubleSided:   len(players) < minRequired,
	}, nil
}

func parseGeneration(text string, numMatches int) (models.GenerateTeamsResponse, error) {
	fields, err := decodeReply(text, MsgInvalidJSON)
	if err != nil {
		return models.GenerateTeamsResponse{}, err
	}

	var (
		teams     []models.Team
		matches   []models.Match
		gameRules []string
	)
	for _, f := range []struct {
		key string
		dst any
	}{
		{"teams", &teams},
		{"matches", &matches},
		{"gameRules", &gameRules},
	} {
		present, err := field(fields, f.key, f.dst)
		if err != nil {
			return models.GenerateTeamsResponse{}, err
		}
		if !present {
			return models.GenerateTeamsResponse{}, &InvalidSchemaError{Message: MsgInvalidStructure}
		}
	}

	if len(matches) != numMatches {
		return models.GenerateTeamsResponse{}, &InvalidSchemaError{Message: MsgInvalidMatchCount}
	}

	for i := range teams {
		if teams[i].Players == nil {
			teams[i].Players = []string{}
		}
	}

	return models.GenerateTeamsResponse{
		Teams:     teams,
		Matches:   matches,
		GameRules: gameRules,
		Success:   true,
	}, nil
}

func (g *Generator) warnOnSuspiciousResult(params generationParams, resp models.GenerateTeamsResponse) {
	if len(resp.Teams) != params.numTeams {
		g.log.Warn("generated team count differs from request",
			zap.Int("requested", params.numTeams), zap.Int("generated", len(resp.Teams)))
	}

	for _, team := range resp.Teams {
		roster := make(map[string]struct{}, len(team.Players))
		for _, p := range team.Players {
			roster[p] = struct{}{}
		}
		for _, p := range team.DoubleSidedPlayers {
			if _, ok := roster[p]; !ok {
				g.log.Warn("double-sided player missing from roster",
					zap.String("team", team.Name), zap.String("player", p))
			}
		}
	}

	seen := make(map[[2]string]int)
	for _, m := range resp.Matches {
		if m.Team1 == m.Team2 {
			g.log.Warn("match pairs a team with itself", zap.Int("match", m.Match), zap.String("team", m.Team1))
		}
		if params.needsToss != (m.Toss != "") {
			g.log.Warn("toss presence does not match request",
				zap.Int("match", m.Match), zap.Bool("needsToss", params.needsToss))
		}
		pair := [2]string{m.Team1, m.Team2}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		seen[pair]++
		if seen[pair] == 2 {
			g.log.Info("repeated pairing in schedule", zap.String("team1", pair[0]), zap.String("team2", pair[1]))
		}
	}
}
