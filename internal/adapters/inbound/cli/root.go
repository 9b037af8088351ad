package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toolcheck/toolcheck/internal/adapters/outbound/tui"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrCheckFailed is returned by a command after it has printed why the
// check failed. Execute only turns it into a non-zero exit code.
var ErrCheckFailed = errors.New("check failed")

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "toolcheck",
		Short: "Validate JSON Schemas and MCP tool definitions",
		Long: "toolcheck checks JSON Schema documents against their draft's metaschema and " +
			"checks MCP tool definitions by submitting them to a hosted LLM API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: false,
				Prefix:          "toolcheck",
				Level:           log.WarnLevel,
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(log.WithContext(cmd.Context(), logger))
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newToolCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrCheckFailed) {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderError(err.Error()))
	}
	return err
}
