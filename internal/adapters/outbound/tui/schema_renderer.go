package tui

import (
	"fmt"
	"strings"

	"github.com/toolcheck/toolcheck/internal/domain"
)

var draftLabels = map[domain.Draft]string{
	domain.Draft4:    "Draft 4",
	domain.Draft6:    "Draft 6",
	domain.Draft7:    "Draft 7",
	domain.Draft2019: "Draft 2019-09",
	domain.Draft2020: "Draft 2020-12",
}

// RenderSchemaReport formats the outcome of a schema check.
func RenderSchemaReport(report *domain.SchemaReport) string {
	var b strings.Builder

	if !report.Valid {
		b.WriteString(failStyle.Render(fmt.Sprintf("✗ Invalid JSON Schema in '%s'", report.File)) + "\n")
		for _, issue := range report.Errors {
			if issue.Location != "" {
				fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(issue.Location), issue.Message)
			} else {
				fmt.Fprintf(&b, "  %s\n", issue.Message)
			}
		}
		return b.String()
	}

	b.WriteString(passStyle.Render(fmt.Sprintf("✓ Schema in '%s' is valid!", report.File)) + "\n")

	if report.MissingSchemaURI() {
		renderMissingSchemaWarning(&b, report)
	} else {
		fmt.Fprintf(&b, "  Schema type: %s\n", report.SchemaURI)
	}

	fmt.Fprintf(&b, "  Validated with: %s\n", report.Draft)
	if report.Title != "" {
		fmt.Fprintf(&b, "  Title: %s\n", report.Title)
	}
	return b.String()
}

func renderMissingSchemaWarning(b *strings.Builder, report *domain.SchemaReport) {
	b.WriteString("\n  " + warnStyle.Render("⚠ Warning: $schema field is missing from the root of your JSON schema") + "\n")
	b.WriteString("  " + warnStyle.Render(fmt.Sprintf("├─ Location: Root level of the JSON object (typically line 1-2 in %s)", report.File)) + "\n")
	b.WriteString("  " + warnStyle.Render("├─ Issue: Without $schema, validators may interpret your schema differently") + "\n")
	b.WriteString("  " + warnStyle.Render(fmt.Sprintf("└─ Defaulting to: %s for this validation", draftLabels[report.Draft])) + "\n")

	if report.Preview == nil {
		return
	}

	// ── Preview ──
	b.WriteString("\n  " + warnStyle.Render("Example - Your schema should start like this:") + "\n")
	b.WriteString("  " + passStyle.Render("{") + "\n")
	b.WriteString("    " + passStyle.Render(fmt.Sprintf(`"$schema": "%s",`, domain.DefaultSchemaURI)) + "\n")
	for _, f := range report.Preview {
		fmt.Fprintf(b, "    \"%s\": %s,\n", f.Key, f.Value)
	}
	if report.MoreFields {
		b.WriteString("    ...\n")
	}
	b.WriteString("  " + passStyle.Render("}") + "\n\n")
}
