package models

// ValidateGameRequest carries the game name typed by the user
type ValidateGameRequest struct {
	GameName string `json:"gameName"`
}

// GameInfo describes a validated game. It is also the /validate-game response.
type GameInfo struct {
	IsValid           bool     `json:"isValid"`
	ValidationMessage string   `json:"validationMessage,omitempty"`
	NeedsToss         bool     `json:"needsToss"`
	Rules             []string `json:"rules"`
}

// InvalidGame is the safe default returned on every validation failure
func InvalidGame(message string) GameInfo {
	return GameInfo{
		IsValid:           false,
		ValidationMessage: message,
		NeedsToss:         false,
		Rules:             []string{},
	}
}
