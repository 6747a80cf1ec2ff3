// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-renderer/internal/charts"
	"github.com/jonathan/resume-renderer/internal/ranking"
	"github.com/jonathan/resume-renderer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintResumeSummary outputs a human-readable summary of a loaded resume:
// the candidate, section sizes, and the skill categories in display order.
func (p *Printer) PrintResumeSummary(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", resume.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", resume.Contact.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Charts:             %d\n", len(resume.Charts)))

	columns := ranking.SkillsByRank(resume, false)
	if len(columns) > 0 {
		sb.WriteString("\nSkills by rank:\n")
		count := min(len(columns), maxItemsToShow)
		for i := 0; i < count; i++ {
			column := columns[i]
			sb.WriteString(fmt.Sprintf("  %d. %s (%d entries)\n", column.Group.Rank, column.Category, len(column.Group.Entries)))
		}
		if len(columns) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(columns)-maxItemsToShow))
		}
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChartSummary outputs the series of one chart: each key's display name
// and its zero-filled value sequence across the chart's points.
func (p *Printer) PrintChartSummary(chart types.ChartEntry) {
	keys := charts.Keys(chart)
	if len(keys) == 0 {
		return
	}

	series := charts.Series(chart)
	names := charts.DisplayNames(chart)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Points: %d\n\n", len(chart.Points)))

	count := min(len(keys), maxItemsToShow)
	for i := 0; i < count; i++ {
		key := keys[i]
		values := make([]string, len(series[key]))
		for j, value := range series[key] {
			values[j] = fmt.Sprintf("%g", value)
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", names[key], strings.Join(values, ", ")))
	}
	if len(keys) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more series\n", len(keys)-maxItemsToShow))
	}

	p.printBox("CHART: "+strings.ToUpper(chart.Title), strings.TrimSuffix(sb.String(), "\n"))
}
