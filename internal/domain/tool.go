package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
)

// ToolDefinition is one MCP tool as found in the input document.
type ToolDefinition struct {
	Index       int             `json:"index"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`

	// HasName reports whether the entry carried a "name" key at all.
	HasName bool `json:"-"`
	// Err is set when the entry could not be read as a tool object.
	Err error `json:"-"`
}

// FunctionTool is the function-calling form of a tool accepted by
// chat-completion APIs.
type FunctionTool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

const unknownToolName = "unknown"

var emptySchema = json.RawMessage(`{}`)

// ExtractTools finds the tool list in an MCP document. It accepts a
// tools/list response ({"result":{"tools":[...]}}), an object with a
// "tools" array, a bare array, or a single tool object.
func ExtractTools(data []byte) ([]ToolDefinition, error) {
	raw, err := locateTools(data)
	if err != nil {
		return nil, err
	}

	tools := make([]ToolDefinition, 0, len(raw))
	for i, entry := range raw {
		tools = append(tools, parseTool(i, entry))
	}
	return tools, nil
}

func locateTools(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decoding tool array: %w", err)
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		// Scalars are treated as a single (broken) tool entry.
		return []json.RawMessage{json.RawMessage(trimmed)}, nil
	}

	if result, ok := obj["result"]; ok {
		var inner map[string]json.RawMessage
		if json.Unmarshal(result, &inner) == nil {
			if tools, ok := inner["tools"]; ok {
				return decodeToolList(tools)
			}
		}
	}
	if tools, ok := obj["tools"]; ok {
		return decodeToolList(tools)
	}
	return []json.RawMessage{json.RawMessage(trimmed)}, nil
}

func decodeToolList(data json.RawMessage) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("\"tools\" must be an array: %w", err)
	}
	return list, nil
}

func parseTool(index int, data json.RawMessage) ToolDefinition {
	tool := ToolDefinition{Index: index, Name: unknownToolName, InputSchema: emptySchema}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		tool.Err = fmt.Errorf("tool entry must be a JSON object, got %s", jsonKind(data))
		return tool
	}

	if v, ok := fields["name"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			tool.Err = fmt.Errorf("\"name\" must be a string: %w", err)
			return tool
		}
		tool.Name = name
		tool.HasName = true
	}
	if v, ok := fields["description"]; ok && string(v) != "null" {
		var desc string
		if err := json.Unmarshal(v, &desc); err != nil {
			tool.Err = fmt.Errorf("\"description\" must be a string: %w", err)
			return tool
		}
		tool.Description = desc
	}
	if v, ok := fields["inputSchema"]; ok && string(v) != "null" {
		tool.InputSchema = v
	}
	return tool
}

func jsonKind(data json.RawMessage) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// ToFunctionTool converts the tool to the function-calling format.
func (t ToolDefinition) ToFunctionTool() FunctionTool {
	params := t.InputSchema
	if len(params) == 0 {
		params = emptySchema
	}
	return FunctionTool{
		Type: "function",
		Function: FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		},
	}
}

// DisplayName returns the tool name, falling back to tool_<index> when the
// entry has no "name" key.
func (t ToolDefinition) DisplayName() string {
	if !t.HasName {
		return fmt.Sprintf("tool_%d", t.Index)
	}
	return t.Name
}

var functionNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidFunctionName reports whether name is accepted as a function name by
// chat-completion APIs.
func ValidFunctionName(name string) bool {
	return functionNamePattern.MatchString(name)
}

// SuggestFunctionName derives a snake_case name from an arbitrary tool name,
// splitting camel-case words and dropping disallowed characters.
func SuggestFunctionName(name string) string {
	var words []string
	for _, field := range strings.FieldsFunc(name, isSeparator) {
		for _, w := range camelcase.Split(field) {
			w = strings.Map(keepNameRune, strings.ToLower(w))
			if w != "" {
				words = append(words, w)
			}
		}
	}
	out := strings.Join(words, "_")
	if len(out) > 64 {
		out = strings.TrimRight(out[:64], "_")
	}
	if out == "" {
		return "tool"
	}
	return out
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '.', '/', ':', '-', '_':
		return true
	}
	return false
}

func keepNameRune(r rune) rune {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}
