package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolcheck/toolcheck/internal/adapters/outbound/schemacheck"
	"github.com/toolcheck/toolcheck/internal/adapters/outbound/tui"
	"github.com/toolcheck/toolcheck/internal/application"
	"github.com/toolcheck/toolcheck/internal/domain"
)

func newSchemaCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "schema [file]",
		Short: "Check that a JSON Schema document is well-formed",
		Long: "Check a JSON Schema document against the metaschema of the draft named by its $schema " +
			"keyword (Draft 2020-12 when missing). Prompts for the filename when none is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFilename(cmd, args, "JSON Schema Validator", "Enter the JSON schema filename: ")
			if err != nil {
				return err
			}

			svc := application.NewSchemaService(schemacheck.New())
			report, err := svc.CheckFile(cmd.Context(), path)
			if err != nil {
				var inErr *domain.InputError
				if errors.As(err, &inErr) {
					return reportLoadError(cmd, err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderError(err.Error()))
				return ErrCheckFailed
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSchemaReport(report))
			}

			if !report.Valid {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
