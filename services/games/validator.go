package games

import (
	"context"
	"strings"

	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"go.uber.org/zap"
)

// Validator asks the collaborator whether a game exists and how it is played.
type Validator struct {
	caller
	cache GameInfoCache
}

// NewValidator creates a Validator
func NewValidator(cfg Config) *Validator {
	return &Validator{caller: newCaller(cfg), cache: cfg.Cache}
}

// Validate never fails: every error is folded into an invalid GameInfo whose
// message describes the failure.
func (v *Validator) Validate(ctx context.Context, gameName string) models.GameInfo {
	name := strings.TrimSpace(gameName)
	if name == "" {
		return models.InvalidGame(MsgGameNameRequired)
	}

	cacheKey := strings.ToLower(name)
	if v.cache != nil {
		cached, err := v.cache.GetGameInfo(ctx, cacheKey)
		if err != nil {
			v.log.Warn("game info cache read failed", zap.String("game", name), zap.Error(err))
		} else if cached != nil {
			return *cached
		}
	}

	info, err := v.validate(ctx, name)
	if err != nil {
		v.log.Warn("game validation failed", zap.String("game", name), zap.Error(err))
		return models.InvalidGame(PublicMessage(err, MsgValidateFailed))
	}

	if v.cache != nil {
		if err := v.cache.SetGameInfo(ctx, cacheKey, info); err != nil {
			v.log.Warn("game info cache write failed", zap.String("game", name), zap.Error(err))
		}
	}
	return info
}

func (v *Validator) validate(ctx context.Context, name string) (models.GameInfo, error) {
	text, err := v.complete(ctx, OperationValidate, llm.CompletionRequest{
		Model: v.models.Validation,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: validationSystemPrompt},
			{Role: llm.RoleUser, Content: validationPrompt(name)},
		},
		Temperature: llm_constants.ValidationTemperature,
		MaxTokens:   llm_constants.ValidationMaxTokens,
	})
	if err != nil {
		return models.GameInfo{}, err
	}

	fields, err := decodeReply(text, MsgInvalidFormat)
	if err != nil {
		return models.GameInfo{}, err
	}

	info := models.GameInfo{Rules: []string{}}

	present, err := field(fields, "isValid", &info.IsValid)
	if err != nil {
		return models.GameInfo{}, err
	}
	if !present {
		return models.GameInfo{}, &InvalidSchemaError{Message: MsgInvalidStructure}
	}

	// Optional fields of the wrong type fall back to their defaults
	var needsToss bool
	if _, err := field(fields, "needsToss", &needsToss); err == nil {
		info.NeedsToss = needsToss
	} else {
		v.log.Debug("ignoring malformed needsToss", zap.String("game", name))
	}
	var rules []string
	if _, err := field(fields, "rules", &rules); err == nil && rules != nil {
		info.Rules = rules
	} else if err != nil {
		v.log.Debug("ignoring malformed rules", zap.String("game", name))
	}
	var message string
	if _, err := field(fields, "validationMessage", &message); err == nil {
		info.ValidationMessage = message
	}

	return info, nil
}
