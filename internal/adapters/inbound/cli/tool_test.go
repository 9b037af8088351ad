package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolcheck/toolcheck/internal/adapters/inbound/cli"
)

func toolFixture(name string) string {
	return filepath.Join(fixtureDir, "tools", name)
}

// fakeAPI serves a chat-completion endpoint replying with status and body.
func fakeAPI(t *testing.T, status int, body map[string]any) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	t.Setenv("TOOLCHECK_MODEL", "")
	t.Setenv("TOOLCHECK_STRATEGY", "")
}

func accepted(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"}},
	}
}

func TestToolCommand_Accepted(t *testing.T) {
	fakeAPI(t, http.StatusOK, accepted("Hello!"))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tool", toolFixture("tools_list.json")})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Injecting 2 tool(s) into OpenAI API")
	assert.Contains(t, out, "Tool 1: get_weather")
	assert.Contains(t, out, "VALIDATION PASSED")
	assert.Contains(t, out, "WARNINGS (2):")
	assert.Contains(t, out, "Status: VALID")
}

func TestToolCommand_Rejected(t *testing.T) {
	fakeAPI(t, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"message": "Invalid schema for function 'search_docs': 'integr' is not valid",
			"type":    "invalid_request_error",
		},
	})

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tool", toolFixture("single_tool.json")})

	assert.ErrorIs(t, cmd.Execute(), cli.ErrCheckFailed)
	out := buf.String()
	assert.Contains(t, out, "VALIDATION FAILED")
	assert.Contains(t, out, "Location: inputSchema")
	assert.Contains(t, out, "Status: INVALID")
}

func TestToolCommand_ReviewJSON(t *testing.T) {
	fakeAPI(t, http.StatusOK, accepted(`{"isValid": true, "errors": [], "warnings": [], "info": [{"message": "1 tool reviewed"}], "summary": "All good"}`))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tool", toolFixture("single_tool.json"), "--strategy", "review", "--json"})
	require.NoError(t, cmd.Execute())

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output should be valid JSON")
	assert.Equal(t, true, result["isValid"])
	assert.Equal(t, "All good", result["summary"])
	assert.Equal(t, "review", result["strategy"])
}

func TestToolCommand_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tool", toolFixture("single_tool.json")})

	assert.ErrorIs(t, cmd.Execute(), cli.ErrCheckFailed)
	out := buf.String()
	assert.Contains(t, out, "OPENAI_API_KEY not found.")
	assert.Contains(t, out, "Option 1")
	assert.Contains(t, out, "Option 2")
}

func TestToolCommand_MalformedJSON(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"tool", toolFixture("malformed.json")})

	assert.ErrorIs(t, cmd.Execute(), cli.ErrCheckFailed)
	assert.Contains(t, buf.String(), "Invalid JSON format")
}

func TestToolCommand_UnknownStrategy(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"tool", toolFixture("single_tool.json"), "--strategy", "guess"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrCheckFailed)
	assert.Contains(t, err.Error(), "unknown strategy")
}
