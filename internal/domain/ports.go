package domain

import (
	"context"
	"errors"
	"fmt"
)

// SchemaChecker checks a JSON Schema document against a draft's metaschema.
// It returns the metaschema violations (empty when the schema is valid) or
// an error when the check itself could not run.
type SchemaChecker interface {
	Check(document []byte, draft Draft) ([]Issue, error)
}

// ChatClient talks to a hosted chat-completion API.
type ChatClient interface {
	// SubmitTools sends a trivial chat request carrying tools. A nil error
	// means the API accepted every tool definition.
	SubmitTools(ctx context.Context, model string, tools []FunctionTool) error
	// Review sends a system prompt and a document, returning the model's
	// JSON answer.
	Review(ctx context.Context, model, systemPrompt, document string) (string, error)
}

// ConfigLoader reads project-level configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not found")

// APIError is a request rejected by the LLM provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
