// Package games implements the three collaborator-backed operations of the
// service: game validation, team and match generation, and rules chat.
//
// Each operation sends exactly one completion request and treats the reply
// as untrusted input.
package games

import (
	"context"
	"errors"
	"time"

	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"go.uber.org/zap"
)

// Operation names used in logs and metrics
const (
	OperationValidate = "validate_game"
	OperationGenerate = "generate_teams"
	OperationChat     = "chat"
)

// Call outcomes reported to the Observer
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Observer is notified after every collaborator call.
type Observer interface {
	ObserveCall(operation, outcome string, elapsed time.Duration)
}

// GameInfoCache stores successful validation results. Get returns nil
// without error on a miss.
type GameInfoCache interface {
	GetGameInfo(ctx context.Context, gameName string) (*models.GameInfo, error)
	SetGameInfo(ctx context.Context, gameName string, info models.GameInfo) error
}

// Config holds the dependencies shared by Validator, Generator and Responder.
// Only Collaborator is required.
type Config struct {
	Collaborator llm.Collaborator
	Models       llm_constants.ModelSet
	Cache        GameInfoCache
	Observer     Observer
	Logger       *zap.Logger
}

// caller wraps the collaborator with logging and call metrics
type caller struct {
	collaborator llm.Collaborator
	models       llm_constants.ModelSet
	observer     Observer
	log          *zap.Logger
}

func newCaller(cfg Config) caller {
	set := cfg.Models
	if set == (llm_constants.ModelSet{}) {
		set = llm_constants.GroqModels
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return caller{
		collaborator: cfg.Collaborator,
		models:       set,
		observer:     cfg.Observer,
		log:          log,
	}
}

func (c caller) complete(ctx context.Context, operation string, req llm.CompletionRequest) (string, error) {
	start := time.Now()
	text, err := c.collaborator.Complete(ctx, req)
	elapsed := time.Since(start)

	outcome := OutcomeSuccess
	var timeoutErr *llm.TimeoutError
	switch {
	case errors.As(err, &timeoutErr):
		outcome = OutcomeTimeout
	case err != nil:
		outcome = OutcomeError
	case text == "":
		outcome = OutcomeEmpty
	}
	if c.observer != nil {
		c.observer.ObserveCall(operation, outcome, elapsed)
	}

	c.log.Debug("collaborator call finished",
		zap.String("operation", operation),
		zap.String("model", req.Model),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
	)
	return text, err
}
