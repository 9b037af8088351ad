package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolcheck/toolcheck/internal/adapters/outbound/tui"
)

// resolveFilename returns the file argument, or prompts for one on stdin
// when none was given. An empty answer prints an error and fails the check.
func resolveFilename(cmd *cobra.Command, args []string, banner, question string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.RenderBanner(banner))
	fmt.Fprint(out, question)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading filename: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, tui.RenderError("No filename provided."))
		return "", ErrCheckFailed
	}
	return name, nil
}

// reportLoadError prints why the input document could not be loaded.
func reportLoadError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderInputError(err))
	return ErrCheckFailed
}
