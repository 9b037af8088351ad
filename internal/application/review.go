package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/toolcheck/toolcheck/internal/domain"
)

const reviewPrompt = `You are a strict validator of Model Context Protocol (MCP) tool definitions.
The user message is a JSON document containing one tool, a "tools" array, or a
tools/list response ({"result": {"tools": [...]}}).

Check every tool for:
- a "name" that is unique and matches ^[a-zA-Z0-9_-]{1,64}$
- a "description" that explains when to use the tool
- an "inputSchema" that is a valid JSON Schema object with "type": "object",
  well-formed "properties", and a "required" list naming only declared properties
- parameter descriptions, sensible types, enums and defaults

Respond with a single JSON object and nothing else:
{
  "isValid": boolean,
  "errors":   [{"severity": "error",   "location": string, "message": string, "suggestion": string}],
  "warnings": [{"severity": "warning", "location": string, "message": string, "suggestion": string}],
  "info":     [{"severity": "info",    "message": string}],
  "summary": string
}
Use JSON paths such as "tools[0].inputSchema.properties.city" for locations.
Anything that would make a function-calling API reject the tool is an error;
style and clarity problems are warnings.`

// verdict is the model's answer. IsValid is a pointer so a missing field can
// be told apart from false.
type verdict struct {
	IsValid  *bool          `json:"isValid"`
	Errors   []domain.Issue `json:"errors"`
	Warnings []domain.Issue `json:"warnings"`
	Info     []domain.Issue `json:"info"`
	Summary  string         `json:"summary"`
}

func (s *ToolService) review(ctx context.Context, data []byte, model string) *domain.Result {
	logger := log.FromContext(ctx)
	s.progress.Reviewing(Provider, model)

	answer, err := s.client.Review(ctx, model, reviewPrompt, string(data))
	if err != nil {
		logger.Debug("review request failed", "err", err)
		result := domain.NewResult()
		result.AddError("API call",
			fmt.Sprintf("%s API error: %s", Provider, apiMessage(err)),
			"Check the API key, model name and network access, then retry the review")
		result.Summary = fmt.Sprintf("Validation failed - %s API request failed", Provider)
		return result
	}

	result, err := parseVerdict(answer)
	if err != nil {
		logger.Debug("unparsable review", "answer", answer)
		failed := domain.NewResult()
		failed.AddError("response", fmt.Sprintf("Could not parse the model's verdict: %v", err),
			"Retry the review or use the inject strategy")
		failed.Summary = "Validation failed - the review response was not valid JSON"
		return failed
	}
	return result
}

// parseVerdict decodes the model's JSON answer, tolerating a surrounding
// markdown code fence.
func parseVerdict(answer string) (*domain.Result, error) {
	text := strings.TrimSpace(answer)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var v verdict
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}

	result := &domain.Result{
		Errors:   v.Errors,
		Warnings: v.Warnings,
		Info:     v.Info,
		Summary:  v.Summary,
	}
	if v.IsValid != nil {
		result.IsValid = *v.IsValid
	} else {
		result.IsValid = len(v.Errors) == 0
	}
	result.Normalize()
	return result, nil
}
