package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/llm"
	"github.com/toolcheck/toolcheck/internal/domain"
)

func completion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15},
	}
}

func newServer(t *testing.T, handler func(t *testing.T, body map[string]any, w http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		handler(t, body, w)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sampleTools() []domain.FunctionTool {
	tool := domain.ToolDefinition{
		Name:        "get_weather",
		Description: "Get the weather",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}}}`),
	}
	return []domain.FunctionTool{tool.ToFunctionTool()}
}

func TestSubmitTools_Accepted(t *testing.T) {
	srv := newServer(t, func(t *testing.T, body map[string]any, w http.ResponseWriter) {
		assert.Equal(t, "gpt-4o-mini", body["model"])
		assert.Equal(t, "none", body["tool_choice"])

		tools, ok := body["tools"].([]any)
		require.True(t, ok)
		require.Len(t, tools, 1)
		fn := tools[0].(map[string]any)["function"].(map[string]any)
		assert.Equal(t, "get_weather", fn["name"])
		assert.Equal(t, "object", fn["parameters"].(map[string]any)["type"])

		_ = json.NewEncoder(w).Encode(completion("Hi!"))
	})

	client := llm.New("sk-test", srv.URL, srv.Client())
	err := client.SubmitTools(context.Background(), "gpt-4o-mini", sampleTools())
	assert.NoError(t, err)
}

func TestSubmitTools_Rejected(t *testing.T) {
	srv := newServer(t, func(t *testing.T, _ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Invalid schema for function 'get_weather': 'strin' is not valid under any of the given schemas.",
				"type":    "invalid_request_error",
				"param":   "tools[0].function.parameters",
				"code":    "invalid_function_parameters",
			},
		})
	})

	client := llm.New("sk-test", srv.URL, srv.Client())
	err := client.SubmitTools(context.Background(), "gpt-4o-mini", sampleTools())
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Invalid schema")
}

func TestReview_ReturnsContent(t *testing.T) {
	srv := newServer(t, func(t *testing.T, body map[string]any, w http.ResponseWriter) {
		format := body["response_format"].(map[string]any)
		assert.Equal(t, "json_object", format["type"])

		temperature, ok := body["temperature"].(float64)
		require.True(t, ok, "temperature must be sent")
		assert.InDelta(t, 0, temperature, 1e-6)

		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, `{"name":"x"}`, messages[1].(map[string]any)["content"])

		_ = json.NewEncoder(w).Encode(completion(`{"isValid": true, "summary": "ok"}`))
	})

	client := llm.New("sk-test", srv.URL, srv.Client())
	answer, err := client.Review(context.Background(), "gpt-4o-mini", "review this", `{"name":"x"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid": true, "summary": "ok"}`, answer)
}

func TestReview_Unauthorized(t *testing.T) {
	srv := newServer(t, func(t *testing.T, _ map[string]any, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided", "type": "invalid_request_error"},
		})
	})

	client := llm.New("sk-test", srv.URL, srv.Client())
	_, err := client.Review(context.Background(), "gpt-4o-mini", "review this", "{}")

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
