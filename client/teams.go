package client

import (
	"context"
	"errors"
	"sync"

	"github.com/yashwanthkasi9182/PlayMate/models"
)

// TeamGeneration keeps the last successful generation and the last error
type TeamGeneration struct {
	client *Client

	mu      sync.Mutex
	results *models.GenerateTeamsResponse
	err     error
}

func NewTeamGeneration(c *Client) *TeamGeneration {
	return &TeamGeneration{client: c}
}

// Generate asks the server for teams. A failure keeps the previous results
// and is both stored and returned.
func (t *TeamGeneration) Generate(ctx context.Context, req models.GenerateTeamsRequest) (*models.GenerateTeamsResponse, error) {
	t.mu.Lock()
	t.err = nil
	t.mu.Unlock()

	var resp models.GenerateTeamsResponse
	err := t.client.postJSON(ctx, "/generate-teams", req, &resp)
	if err == nil && !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Failed to generate teams"
		}
		err = errors.New(msg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.err = err
		return nil, err
	}
	t.results = &resp
	return &resp, nil
}

// Results returns the last successful generation, or nil
func (t *TeamGeneration) Results() *models.GenerateTeamsResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.results
}

func (t *TeamGeneration) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Clear forgets the results and the error
func (t *TeamGeneration) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = nil
	t.err = nil
}
