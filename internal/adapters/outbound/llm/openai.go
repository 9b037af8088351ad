package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// probeMessage is the user message sent alongside injected tools. Its content
// is irrelevant; only acceptance of the tools matters.
const probeMessage = "Hello"

// Client implements domain.ChatClient against an OpenAI-compatible
// chat-completion endpoint.
type Client struct {
	api *openai.Client
}

// New creates a Client for the given API key. An empty baseURL uses the
// public OpenAI endpoint. httpClient may be nil.
func New(apiKey, baseURL string, httpClient *http.Client) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// SubmitTools sends one chat request carrying tools with tool_choice "none".
func (c *Client) SubmitTools(ctx context.Context, model string, tools []domain.FunctionTool) error {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: probeMessage},
		},
		Tools:      toOpenAITools(tools),
		ToolChoice: "none",
	}

	log.FromContext(ctx).Debug("submitting tools", "model", model, "count", len(tools))

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return translateError(err)
	}
	log.FromContext(ctx).Debug("tools accepted", "id", resp.ID, "prompt_tokens", resp.Usage.PromptTokens)
	return nil
}

// Review asks the model to review document and returns its JSON answer.
func (c *Client) Review(ctx context.Context, model, systemPrompt, document string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: document},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		// go-openai omits a zero temperature; the smallest float32 is sent as 0.
		Temperature: math.SmallestNonzeroFloat32,
	}

	log.FromContext(ctx).Debug("requesting review", "model", model, "bytes", len(document))

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &domain.APIError{Message: "response contained no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAITools(tools []domain.FunctionTool) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  t.Function.Parameters,
			},
		})
	}
	return out
}

// translateError maps go-openai errors to *domain.APIError so callers can
// read the provider's message without depending on the SDK.
func translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &domain.APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &domain.APIError{StatusCode: reqErr.HTTPStatusCode, Message: msg}
	}
	return fmt.Errorf("calling chat completion API: %w", err)
}
