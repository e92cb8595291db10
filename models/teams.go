package models

// Player is a participant entered on the generation form
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team is a roster produced by the collaborator.
// Every name in DoubleSidedPlayers is expected to also appear in Players.
type Team struct {
	Name               string   `json:"name"`
	Players            []string `json:"players"`
	DoubleSidedPlayers []string `json:"doubleSidedPlayers,omitempty"`
}

// Match pairs two distinct teams. Toss is only set when the request asked for it.
type Match struct {
	Match int    `json:"match"`
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Toss  string `json:"toss,omitempty"`
	Time  string `json:"time"`
}

// GenerateTeamsRequest to build teams and a match schedule
type GenerateTeamsRequest struct {
	Game       string   `json:"game"`
	Mode       string   `json:"mode"`
	Players    []string `json:"players"`
	NumTeams   int      `json:"numTeams"`
	TeamSize   int      `json:"teamSize"`
	NumMatches int      `json:"numMatches"`
	NeedsToss  bool     `json:"needsToss,omitempty"`
}

// GenerateTeamsResponse is returned by /generate-teams. The collections are
// never nil so they always serialise as arrays.
type GenerateTeamsResponse struct {
	Teams     []Team   `json:"teams"`
	Matches   []Match  `json:"matches"`
	GameRules []string `json:"gameRules"`
	Success   bool     `json:"success"`
	Error     string   `json:"error,omitempty"`
}

// FailedGeneration builds the empty failure envelope
func FailedGeneration(message string) GenerateTeamsResponse {
	return GenerateTeamsResponse{
		Teams:     []Team{},
		Matches:   []Match{},
		GameRules: []string{},
		Success:   false,
		Error:     message,
	}
}
