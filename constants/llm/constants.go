package llm_constants

// Collaborator call parameters. These are fixed per operation and are not
// exposed through configuration.
const (
	ValidationTemperature = 0.3
	GenerationTemperature = 0.7
	ChatTemperature       = 0.7

	ValidationMaxTokens = 1024
	GenerationMaxTokens = 2048
	ChatMaxTokens       = 512
)

// Supported collaborator backends
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// ModelSet names the model used by each operation
type ModelSet struct {
	Validation string
	Generation string
	Chat       string
}

var GroqModels = ModelSet{
	Validation: "llama3-8b-8192",
	Generation: "openai/gpt-oss-20b",
	Chat:       "llama3-8b-8192",
}

var GeminiModels = ModelSet{
	Validation: "gemini-2.0-flash",
	Generation: "gemini-2.0-flash",
	Chat:       "gemini-2.0-flash",
}

// ModelsFor returns the model set of a provider, defaulting to Groq
func ModelsFor(provider string) ModelSet {
	if provider == ProviderGemini {
		return GeminiModels
	}
	return GroqModels
}

// Chat texts shown to users
const (
	DefaultMode = "standard"

	// ChatFallback is answered when the collaborator returns no content
	ChatFallback = "Sorry, I could not generate a response."

	// ChatErrorTurn is appended to a stored conversation when a turn fails
	ChatErrorTurn = "Sorry, I encountered an error. Please try again."
)
