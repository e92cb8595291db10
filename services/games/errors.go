package games

import (
	"errors"

	"github.com/yashwanthkasi9182/PlayMate/services/llm"
)

// Messages returned to callers
const (
	MsgGameNameRequired     = "Game name is required"
	MsgMissingFields        = "Missing required fields"
	MsgChatFieldsRequired   = "Message and game are required"
	MsgNoResponse           = "No response from AI"
	MsgInvalidJSON          = "Invalid JSON response from AI"
	MsgInvalidFormat        = "Invalid response format from AI"
	MsgInvalidStructure     = "Invalid response structure from AI"
	MsgInvalidMatchCount    = "Invalid number of matches generated"
	MsgValidateFailed       = "Failed to validate game"
	MsgGenerateFailed       = "Failed to generate teams"
	MsgChatFailed           = "Failed to process chat message"
	MsgInvalidBody          = "Invalid request body"
	msgMaxMatches           = "Maximum %d matches possible with %d teams"
)

// ValidationError rejects a request before the collaborator is called.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamEmptyError means the collaborator answered without content.
type UpstreamEmptyError struct{}

func (e *UpstreamEmptyError) Error() string { return MsgNoResponse }

// ResponseFormatError means the reply was not parseable JSON. The parser's
// own message is kept as the cause but never printed.
type ResponseFormatError struct {
	Message string
	Cause   error
}

func (e *ResponseFormatError) Error() string { return e.Message }

func (e *ResponseFormatError) Unwrap() error { return e.Cause }

// InvalidSchemaError means the reply parsed but has the wrong shape.
type InvalidSchemaError struct {
	Message string
}

func (e *InvalidSchemaError) Error() string { return e.Message }

// PublicMessage returns the text shown to users for err. Known failures keep
// their own message, anything else is replaced by fallback.
func PublicMessage(err error, fallback string) string {
	var (
		validationErr *ValidationError
		emptyErr      *UpstreamEmptyError
		formatErr     *ResponseFormatError
		schemaErr     *InvalidSchemaError
		timeoutErr    *llm.TimeoutError
		authErr       *llm.AuthError
		rateErr       *llm.RateLimitError
		providerErr   *llm.ProviderError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &emptyErr):
		return emptyErr.Error()
	case errors.As(err, &formatErr):
		return formatErr.Error()
	case errors.As(err, &schemaErr):
		return schemaErr.Error()
	case errors.As(err, &timeoutErr):
		return timeoutErr.Error()
	case errors.As(err, &authErr):
		return authErr.Error()
	case errors.As(err, &rateErr):
		return rateErr.Error()
	case errors.As(err, &providerErr):
		return providerErr.Error()
	}
	return fallback
}

// IsValidationError reports whether err was raised by input checks
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
