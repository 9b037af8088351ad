package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toolcheck/toolcheck/internal/domain"
)

// ── Palette ──
var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // orange
	info    = lipgloss.Color("#22D3EE") // cyan
	dim     = lipgloss.Color("#6B7280") // muted gray
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	infoStyle  = lipgloss.NewStyle().Foreground(info)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	boldStyle  = lipgloss.NewStyle().Bold(true)
	passHeader = passStyle.Bold(true)
	failHeader = failStyle.Bold(true)
	warnHeader = warnStyle.Bold(true)
	infoHeader = infoStyle.Bold(true)
	ruleLine   = strings.Repeat("=", 70)
)

// RenderToolResult formats a tool check result as a report with a header,
// summary, numbered issues and a status footer.
func RenderToolResult(result *domain.Result, file string) string {
	var b strings.Builder

	// ── Header ──
	b.WriteString("\n" + ruleLine + "\n")
	if result.IsValid {
		b.WriteString(passHeader.Render("✓ VALIDATION PASSED"))
	} else {
		b.WriteString(failHeader.Render("✗ VALIDATION FAILED"))
	}
	b.WriteString("\n" + ruleLine + "\n")

	if result.Summary != "" {
		b.WriteString("\n" + boldStyle.Render("Summary:") + "\n")
		fmt.Fprintf(&b, "  %s\n", result.Summary)
	}

	// ── Issues ──
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "\n%s\n", failHeader.Render(fmt.Sprintf("ERRORS (%d):", len(result.Errors))))
		for i, issue := range result.Errors {
			renderIssue(&b, i+1, issue, failStyle, "Unknown error", "Fix:")
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", warnHeader.Render(fmt.Sprintf("WARNINGS (%d):", len(result.Warnings))))
		for i, issue := range result.Warnings {
			renderIssue(&b, i+1, issue, warnStyle, "Unknown warning", "Recommendation:")
		}
	}

	if len(result.Info) > 0 {
		fmt.Fprintf(&b, "\n%s\n", infoHeader.Render(fmt.Sprintf("INFORMATION (%d):", len(result.Info))))
		for _, item := range result.Info {
			fmt.Fprintf(&b, "  %s\n", infoStyle.Render("• "+item.Message))
		}
	}

	// ── Footer ──
	b.WriteString("\n" + ruleLine + "\n")
	fmt.Fprintf(&b, "File: %s\n", file)
	if result.IsValid {
		fmt.Fprintf(&b, "Status: %s\n", passStyle.Render("VALID"))
	} else {
		fmt.Fprintf(&b, "Status: %s\n", failStyle.Render("INVALID"))
	}
	if len(result.Errors) > 0 || len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "Issues: %s, %s\n",
			failStyle.Render(fmt.Sprintf("%d error(s)", len(result.Errors))),
			warnStyle.Render(fmt.Sprintf("%d warning(s)", len(result.Warnings))),
		)
	}
	b.WriteString(ruleLine + "\n\n")

	return b.String()
}

func renderIssue(b *strings.Builder, n int, issue domain.Issue, style lipgloss.Style, fallback, suggestionLabel string) {
	msg := issue.Message
	if msg == "" {
		msg = fallback
	}
	fmt.Fprintf(b, "\n  %s\n", style.Render(fmt.Sprintf("[%d] %s", n, msg)))
	if issue.Location != "" {
		fmt.Fprintf(b, "      %s %s\n", boldStyle.Render("Location:"), issue.Location)
	}
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "      %s %s\n", boldStyle.Render(suggestionLabel), issue.Suggestion)
	}
}
