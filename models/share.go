package models

import "time"

// ShareData is the shareable snapshot of a generation result
type ShareData struct {
	Teams   []Team  `json:"teams"`
	Matches []Match `json:"matches"`
	Game    string  `json:"game"`
	Mode    string  `json:"mode"`
}

// ShareResponse returns the token of a stored snapshot
type ShareResponse struct {
	Success   bool       `json:"success"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}
