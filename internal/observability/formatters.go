// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/LGuichet/CareerForge/internal/experience"
	"github.com/LGuichet/CareerForge/internal/timeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// formatPeriod renders a period as "start → end" with an open end shown as
// "today".
func formatPeriod(p experience.Period) string {
	end := "today"
	if !p.IsOpen() {
		end = experience.FormatDate(*p.End)
	}
	return fmt.Sprintf("%s → %s", experience.FormatDate(p.Start), end)
}

// PrintTimeline outputs a human-readable summary of the projected timeline.
func (p *Printer) PrintTimeline(tl timeline.Timeline) {
	var sb strings.Builder

	if len(tl) == 0 {
		sb.WriteString("No experiences yet.\n")
	}
	for _, exp := range tl {
		sb.WriteString(fmt.Sprintf("%s → %s  %s\n",
			experience.FormatDate(exp.StartDate),
			experience.FormatDate(exp.EndDate),
			exp.JobTitle))
		sb.WriteString(fmt.Sprintf("            at %s\n", exp.CompanyName))
	}

	if overlaps := tl.Overlaps(); len(overlaps) > 0 {
		sb.WriteString("\n")
		for _, o := range overlaps {
			sb.WriteString(fmt.Sprintf("! overlap: %s / %s\n", o.Earlier.JobTitle, o.Later.JobTitle))
		}
	}

	p.printBox(fmt.Sprintf("Career Timeline (%d experiences)", len(tl)), strings.TrimRight(sb.String(), "\n"))
}

// PrintGaps outputs the uncovered periods a user could fill.
func (p *Printer) PrintGaps(gaps []experience.Period) {
	var sb strings.Builder
	for _, gap := range gaps {
		sb.WriteString(formatPeriod(gap))
		sb.WriteString("\n")
	}
	p.printBox("Gaps To Fill", strings.TrimRight(sb.String(), "\n"))
}

// PrintSelection outputs the active period and the record bound to the form.
func (p *Printer) PrintSelection(period experience.Period, selected *experience.Experience) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Period: %s\n", formatPeriod(period)))
	if selected != nil {
		sb.WriteString(fmt.Sprintf("Editing: %s at %s\n", selected.JobTitle, selected.CompanyName))
	} else {
		sb.WriteString("Creating a new entry\n")
	}
	p.printBox("Active Selection", strings.TrimRight(sb.String(), "\n"))
}
