package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// Provider is the display name of the chat-completion API.
const Provider = "OpenAI"

// ToolOptions controls a single tool check.
type ToolOptions struct {
	Model    string
	Strategy domain.Strategy
	Timeout  time.Duration
}

// ToolService checks MCP tool definitions against a hosted LLM API.
type ToolService struct {
	client   domain.ChatClient
	progress domain.ProgressReporter
}

// NewToolService creates a ToolService. progress may be nil.
func NewToolService(client domain.ChatClient, progress domain.ProgressReporter) *ToolService {
	if progress == nil {
		progress = domain.NopProgress{}
	}
	return &ToolService{client: client, progress: progress}
}

// CheckFile loads path and checks the tool definitions it contains. Load
// failures are returned as *domain.InputError; a rejected tool is reported
// in the result, not as an error.
func (s *ToolService) CheckFile(ctx context.Context, path string, opts ToolOptions) (*domain.Result, error) {
	data, _, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	s.progress.Started(path)
	result := s.CheckDocument(ctx, data, opts)
	result.File = path
	return result, nil
}

// CheckDocument checks well-formed JSON data with the configured strategy.
func (s *ToolService) CheckDocument(ctx context.Context, data []byte, opts ToolOptions) *domain.Result {
	if opts.Model == "" {
		opts.Model = domain.DefaultModel
	}
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyInject
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var result *domain.Result
	switch opts.Strategy {
	case domain.StrategyReview:
		result = s.review(ctx, data, opts.Model)
	default:
		result = s.inject(ctx, data, opts.Model)
	}
	result.RunID = uuid.NewString()
	result.Strategy = string(opts.Strategy)
	return result
}

func (s *ToolService) inject(ctx context.Context, data []byte, model string) *domain.Result {
	logger := log.FromContext(ctx)
	result := domain.NewResult()

	tools, err := domain.ExtractTools(data)
	if err != nil {
		result.AddError("root", err.Error(), "Ensure the JSON contains a 'tools' array with tool definitions")
		return result
	}

	s.progress.Injecting(Provider, len(tools))

	var (
		functions []domain.FunctionTool
		accepted  []domain.ToolDefinition
	)
	for _, tool := range tools {
		if tool.Err != nil {
			result.AddError(
				fmt.Sprintf("tools[%d]", tool.Index),
				fmt.Sprintf("Failed to convert MCP tool to function-calling format: %v", tool.Err),
				"Check that the tool has required fields: name, description, inputSchema",
			)
			continue
		}
		fn := tool.ToFunctionTool()
		functions = append(functions, fn)
		accepted = append(accepted, tool)
		s.progress.Converted(tool.Index, fn.Function.Name)
	}

	if len(functions) == 0 {
		result.AddError("root", "No valid tools found in the JSON",
			"Ensure the JSON contains a 'tools' array with tool definitions")
		return result
	}

	s.progress.Submitting(Provider)
	logger.Debug("submitting tools", "count", len(functions), "model", model)

	if err := s.client.SubmitTools(ctx, model, functions); err != nil {
		logger.Debug("tools rejected", "err", err)
		addRejection(result, err)
		result.Summary = fmt.Sprintf("Validation failed - %s API rejected the tool definition", Provider)
		return result
	}

	result.IsValid = len(result.Errors) == 0
	result.Summary = fmt.Sprintf("Successfully validated %d tool(s) with %s API", len(functions), Provider)
	result.AddInfo(fmt.Sprintf("All %d tool definition(s) accepted by %s API", len(functions), Provider))
	addBestPracticeWarnings(result, accepted)
	return result
}

// addRejection records an API failure. Messages mentioning an invalid
// schema point at inputSchema; anything else points at the call itself.
func addRejection(result *domain.Result, err error) {
	msg := apiMessage(err)

	if strings.Contains(msg, "Invalid schema") || strings.Contains(strings.ToLower(msg), "invalid") {
		result.AddError("inputSchema",
			fmt.Sprintf("%s API rejected the schema: %s", Provider, msg),
			"Check that inputSchema follows JSON Schema Draft 7 specification")
		return
	}
	result.AddError("API call",
		fmt.Sprintf("%s API error: %s", Provider, msg),
		"Review the full error message and check your tool definition")
}

// apiMessage returns the provider's own message for API errors.
func apiMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func addBestPracticeWarnings(result *domain.Result, tools []domain.ToolDefinition) {
	for _, tool := range tools {
		if tool.Description == "" {
			result.AddWarning(
				fmt.Sprintf("tools[%d].description", tool.Index),
				fmt.Sprintf("Tool '%s' is missing a description", tool.DisplayName()),
				"Add a description to help the AI understand when to use this tool",
			)
		}
		if tool.Name != "" && !domain.ValidFunctionName(tool.Name) {
			result.AddWarning(
				fmt.Sprintf("tools[%d].name", tool.Index),
				fmt.Sprintf("Tool name '%s' is not a portable function name", tool.Name),
				fmt.Sprintf("Use only letters, digits, '_' and '-' (max 64), e.g. '%s'", domain.SuggestFunctionName(tool.Name)),
			)
		}
	}
}
