package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toolcheck/toolcheck/internal/adapters/outbound/config"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/llm"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/tui"
	"github.com/toolcheck/toolcheck/internal/application"
	"github.com/toolcheck/toolcheck/internal/domain"
)

func newToolCmd() *cobra.Command {
	var (
		strategy   string
		model      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "tool [file]",
		Short: "Check an MCP tool definition against a hosted LLM API",
		Long: "Check MCP tool definitions by submitting them to the OpenAI chat-completion API " +
			"(strategy inject) or by asking the model for a structured review (strategy review). " +
			"Reads OPENAI_API_KEY from the environment or a .env file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFilename(cmd, args, "MCP Tool JSON Validator (OpenAI-powered)", "Enter the MCP tool JSON filename: ")
			if err != nil {
				return err
			}

			data, _, err := application.LoadDocument(path)
			if err != nil {
				return reportLoadError(cmd, err)
			}

			cfg, dotEnvPath, err := loadToolConfig(cmd)
			if err != nil {
				return err
			}
			cfg = cfg.Merge(domain.Config{Model: model, Strategy: domain.Strategy(strategy)})
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.APIKey == "" {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderMissingAPIKey(dotEnvPath))
				return ErrCheckFailed
			}

			var progress domain.ProgressReporter
			if !jsonOutput {
				p := tui.NewProgress(cmd.OutOrStdout())
				p.Started(path)
				progress = p
			}

			svc := application.NewToolService(llm.New(cfg.APIKey, cfg.BaseURL, nil), progress)
			result := svc.CheckDocument(cmd.Context(), data, application.ToolOptions{
				Model:    cfg.Model,
				Strategy: cfg.Strategy,
				Timeout:  cfg.Timeout,
			})
			result.File = path

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderToolResult(result, path))
			}

			if !result.IsValid {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Check strategy: inject or review (default inject)")
	cmd.Flags().StringVar(&model, "model", "", "Chat model to use (default "+domain.DefaultModel+")")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// loadToolConfig loads .env files and resolves the configuration for the
// working directory. It also returns the .env path suggested to users
// without an API key.
func loadToolConfig(cmd *cobra.Command) (domain.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, "", fmt.Errorf("resolving working directory: %w", err)
	}

	loaded, err := config.LoadDotEnv(config.DotEnvPaths(wd)...)
	if err != nil {
		return domain.Config{}, "", err
	}
	log.FromContext(cmd.Context()).Debug("loaded env files", "files", loaded)

	cfg, err := config.Resolve(config.New(), wd)
	if err != nil {
		return domain.Config{}, "", err
	}
	return cfg, filepath.Join(wd, config.DotEnvFile), nil
}
