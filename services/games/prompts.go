package games

import (
	"fmt"
	"strings"
)

const validationSystemPrompt = "You are a sports and games expert. Return only valid JSON."

const generationSystemPrompt = "You are a sports team generator that creates fair and balanced teams. " +
	"Return only valid JSON without any markdown or code block formatting."

func validationPrompt(gameName string) string {
	return fmt.Sprintf(`Validate if "%s" is a real sport or game that can be played with teams.
If it is valid, provide information about:
1. Whether it requires a toss (and if yes, how it works)
2. Game-specific rules related to team formation and player roles
3. Any team-related constraints or special considerations

Return ONLY valid JSON in this exact format:
{
  "isValid": boolean,
  "validationMessage": "string explaining why the game is invalid, if applicable",
  "needsToss": boolean,
  "rules": ["array of strings with game rules and team constraints"]
}`, gameName)
}

// generationParams are the checked inputs of a generation prompt
type generationParams struct {
	game               string
	players            []string
	numTeams           int
	teamSize           int
	numMatches         int
	needsToss          bool
	minRequiredPlayers int
	hasExtraPlayers    bool
	needsDoubleSided   bool
}

func generationPrompt(p generationParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate fair and balanced teams for %s with these parameters:\n", p.game)
	fmt.Fprintf(&b, "- Number of teams: %d\n", p.numTeams)
	fmt.Fprintf(&b, "- Players per team: %d\n", p.teamSize)
	fmt.Fprintf(&b, "- Number of matches: %d\n", p.numMatches)
	fmt.Fprintf(&b, "- Available players: %s\n\n", strings.Join(p.players, ", "))

	b.WriteString("Requirements:\n")
	if p.needsDoubleSided {
		fmt.Fprintf(&b, "- Some players may need to play for multiple teams due to having fewer than %d players\n", p.minRequiredPlayers)
	}
	if p.hasExtraPlayers {
		b.WriteString("- Extra players should be distributed evenly across teams\n")
	}
	if p.needsToss {
		b.WriteString("- Include toss results for matches between teams\n")
	}
	b.WriteString("- For each match, randomly select two different teams to play against each other\n")
	b.WriteString("- Each team should play approximately the same number of matches\n")
	b.WriteString("- Avoid repeating the same team matchups if possible\n\n")

	b.WriteString(`Format the response EXACTLY as follows (JSON only, no code block markers):
{
  "teams": [
    {
      "name": "Team X",
      "players": ["player1", "player2", ...],
      "doubleSidedPlayers": ["player1"] // only if playing for multiple teams
    }
  ],
  "matches": [
    {
      "match": 1,
      "team1": "Team X",
      "team2": "Team Y",
`)
	if p.needsToss {
		b.WriteString("      \"toss\": \"Team that won the toss\",\n")
	}
	b.WriteString(`      "time": "Match 1"
    }
  ],
`)
	fmt.Fprintf(&b, "  \"gameRules\": [\"Important game rules for %s\"]\n}", p.game)

	return b.String()
}

func chatSystemPrompt(game, mode string) string {
	return fmt.Sprintf(`You are a helpful assistant for %[1]s game rules and gameplay questions.

STRICT RULES:
- ONLY answer questions related to %[1]s gameplay, rules, strategies, techniques, and equipment
- If user asks about other games, topics, or unrelated questions, politely redirect them back to %[1]s
- Keep responses concise and helpful (max 150 words)
- Focus on practical gameplay advice
- If asked about scoring, team positions, game duration, equipment, or strategies - provide detailed help

Current game mode: %[2]s

Example responses for off-topic:
"I'm here to help with %[1]s questions only. What would you like to know about %[1]s rules or gameplay?"

Respond naturally but stay focused on %[1]s-related topics only.`, game, mode)
}
