package tui

import (
	"fmt"
	"io"
)

// Progress writes tool-check progress lines to w. It implements
// domain.ProgressReporter.
type Progress struct {
	w io.Writer
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer) *Progress { return &Progress{w: w} }

func (p *Progress) Started(path string) {
	fmt.Fprintln(p.w, infoStyle.Render("Validating MCP Tool JSON: "+path))
}

func (p *Progress) Injecting(provider string, count int) {
	fmt.Fprintln(p.w, infoStyle.Render(fmt.Sprintf("🔍 Injecting %d tool(s) into %s API...", count, provider)))
}

func (p *Progress) Converted(index int, name string) {
	fmt.Fprintln(p.w, infoStyle.Render(fmt.Sprintf("  ├─ Tool %d: %s", index+1, name)))
}

func (p *Progress) Submitting(provider string) {
	fmt.Fprintln(p.w, infoStyle.Render(fmt.Sprintf("  └─ Testing with %s API...", provider)))
}

func (p *Progress) Reviewing(provider, model string) {
	fmt.Fprintln(p.w, infoStyle.Render(fmt.Sprintf("🔍 Asking %s (%s) to review the tool definition...", provider, model)))
}
