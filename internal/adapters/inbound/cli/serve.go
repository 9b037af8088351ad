package cli

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/toolcheck/toolcheck/internal/adapters/inbound/mcp"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start toolcheck MCP server (stdio)",
		Long: "Start an MCP server on stdio exposing the schema and tool checks, so AI assistants " +
			"can validate JSON Schemas and tool definitions while writing them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			if _, err := config.LoadDotEnv(config.DotEnvPaths(wd)...); err != nil {
				return err
			}
			cfg, err := config.Resolve(config.New(), wd)
			if err != nil {
				return err
			}

			s := mcpadapter.NewToolcheckMCPServer(cfg, version)
			return server.ServeStdio(s)
		},
	}
}
