package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for the completion service.
// The engine calls Generate once per turn to render the tutor's next
// question; output is never assumed deterministic.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the response.
	// The request's Schema field, when set, instructs the provider to
	// return JSON conforming to that schema. The response Content will
	// be the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the tutor persona and the
	// never-answer-directly constraint.
	System string

	// Messages is the conversation history, oldest first.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	// Zero falls back to the tutoring-turn default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero falls back to the tutoring-turn default.
	Temperature float64
}

// Generation defaults sized for one Socratic question plus its
// concept tags. Some sampling variety keeps consecutive questions
// from reading identically.
const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)

// withDefaults fills unset knobs with tutoring-turn defaults.
func (r Request) withDefaults() Request {
	if r.MaxTokens <= 0 {
		r.MaxTokens = defaultMaxTokens
	}
	if r.Temperature <= 0 {
		r.Temperature = defaultTemperature
	}
	return r
}

// normalizeStop folds provider-specific finish reasons into the two
// the engine cares about.
func normalizeStop(reason string) string {
	switch reason {
	case "max_tokens", "MAX_TOKENS", "length":
		return "max_tokens"
	}
	return "end"
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "socratic-turn".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
