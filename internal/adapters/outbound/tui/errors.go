package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// RenderError formats a generic failure in red.
func RenderError(msg string) string {
	return failStyle.Render("Error: "+msg) + "\n"
}

// RenderInputError formats a failure to load the document under check.
func RenderInputError(err error) string {
	var inErr *domain.InputError
	if !errors.As(err, &inErr) {
		return RenderError(err.Error())
	}

	switch inErr.Kind {
	case domain.InputNotFound:
		return RenderError(fmt.Sprintf("File '%s' not found.", inErr.Path))
	case domain.InputMalformed:
		return failStyle.Render(fmt.Sprintf("Error: Invalid JSON format in '%s'", inErr.Path)) + "\n" +
			fmt.Sprintf("  %v\n", inErr.Err)
	default:
		return failStyle.Render(fmt.Sprintf("Error reading file: %v", inErr.Err)) + "\n"
	}
}

// RenderMissingAPIKey explains the two ways to provide an API key.
func RenderMissingAPIKey(dotEnvPath string) string {
	var b strings.Builder
	b.WriteString(RenderError("OPENAI_API_KEY not found."))
	b.WriteString("\nOption 1: Create a .env file:\n")
	fmt.Fprintf(&b, "  Location: %s\n", dotEnvPath)
	b.WriteString("  Content:  OPENAI_API_KEY=sk-your-api-key-here\n")
	b.WriteString("\nOption 2: Set environment variable:\n")
	b.WriteString("  Linux/Mac: export OPENAI_API_KEY='sk-your-api-key-here'\n")
	b.WriteString("  Windows:   set OPENAI_API_KEY=sk-your-api-key-here\n")
	return b.String()
}

// RenderBanner is shown before prompting for a filename.
func RenderBanner(title string) string {
	return boldStyle.Render(title) + "\n" + strings.Repeat("-", 50) + "\n"
}
