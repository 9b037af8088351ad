package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/toolcheck/toolcheck/internal/adapters/outbound/llm"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/schemacheck"
	"github.com/toolcheck/toolcheck/internal/application"
	"github.com/toolcheck/toolcheck/internal/domain"
)

// registerTools registers all toolcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	// 1. toolcheck_validate_schema
	s.AddTool(
		mcplib.NewTool("toolcheck_validate_schema",
			mcplib.WithDescription("Check that a JSON Schema file is well-formed for the draft named by its $schema keyword"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the JSON Schema file"),
			),
		),
		handleValidateSchema(),
	)

	// 2. toolcheck_validate_tool
	s.AddTool(
		mcplib.NewTool("toolcheck_validate_tool",
			mcplib.WithDescription("Check MCP tool definitions in a JSON file against the OpenAI chat-completion API"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the MCP tool JSON file"),
			),
			mcplib.WithString("strategy",
				mcplib.Description("inject (submit the tools) or review (ask the model for a verdict)"),
				mcplib.Enum(string(domain.StrategyInject), string(domain.StrategyReview)),
			),
		),
		handleValidateTool(cfg),
	)
}

func handleValidateSchema() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewSchemaService(schemacheck.New())
		report, err := svc.CheckFile(ctx, path)
		if err != nil {
			return errorResult(describeLoadError(err)), nil
		}
		return jsonResult(report)
	}
}

func handleValidateTool(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		strategy := cfg.Strategy
		if s := request.GetString("strategy", ""); s != "" {
			strategy = domain.Strategy(s)
		}
		if !strategy.IsValid() {
			return errorResult(fmt.Sprintf("unknown strategy %q", strategy)), nil
		}
		if cfg.APIKey == "" {
			return errorResult(domain.ErrMissingAPIKey.Error() + " in the toolcheck server environment"), nil
		}

		svc := application.NewToolService(llm.New(cfg.APIKey, cfg.BaseURL, nil), nil)
		result, err := svc.CheckFile(ctx, path, application.ToolOptions{
			Model:    cfg.Model,
			Strategy: strategy,
			Timeout:  cfg.Timeout,
		})
		if err != nil {
			return errorResult(describeLoadError(err)), nil
		}
		return jsonResult(result)
	}
}

func describeLoadError(err error) string {
	var inErr *domain.InputError
	if errors.As(err, &inErr) {
		return inErr.Error()
	}
	return fmt.Sprintf("check failed: %v", err)
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result visible to the MCP client.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
