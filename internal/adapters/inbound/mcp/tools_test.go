package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolcheck/toolcheck/internal/domain"
)

const fixtures = "../../../../testdata"

func callRequest(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleValidateSchema_Valid(t *testing.T) {
	res, err := handleValidateSchema()(context.Background(), callRequest(map[string]any{
		"path": filepath.Join(fixtures, "schemas", "person.json"),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var report domain.SchemaReport
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, domain.Draft2020, report.Draft)
}

func TestHandleValidateSchema_MissingPath(t *testing.T) {
	res, err := handleValidateSchema()(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleValidateSchema_Malformed(t *testing.T) {
	res, err := handleValidateSchema()(context.Background(), callRequest(map[string]any{
		"path": filepath.Join(fixtures, "schemas", "malformed.json"),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "invalid JSON format")
}

func TestHandleValidateTool_NoAPIKey(t *testing.T) {
	res, err := handleValidateTool(domain.DefaultConfig())(context.Background(), callRequest(map[string]any{
		"path": filepath.Join(fixtures, "tools", "single_tool.json"),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "OPENAI_API_KEY")
}

func TestHandleValidateTool_UnknownStrategy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.APIKey = "sk-test"
	res, err := handleValidateTool(cfg)(context.Background(), callRequest(map[string]any{
		"path":     filepath.Join(fixtures, "tools", "single_tool.json"),
		"strategy": "guess",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleValidateTool_Accepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": "Hi"}, "finish_reason": "stop"}},
		})
	}))
	defer srv.Close()

	cfg := domain.DefaultConfig()
	cfg.APIKey = "sk-test"
	cfg.BaseURL = srv.URL

	res, err := handleValidateTool(cfg)(context.Background(), callRequest(map[string]any{
		"path": filepath.Join(fixtures, "tools", "single_tool.json"),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	var result domain.Result
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &result))
	assert.True(t, result.IsValid)
	assert.Equal(t, "inject", result.Strategy)
	assert.Empty(t, result.Warnings)
}
