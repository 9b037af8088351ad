package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/toolcheck/toolcheck/internal/domain"
)

// NewToolcheckMCPServer creates an MCP server exposing the schema and tool
// checks. cfg supplies the API key and model for tool checks.
func NewToolcheckMCPServer(cfg domain.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"toolcheck",
		version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, cfg)

	return s
}
