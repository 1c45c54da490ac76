// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/job-scout/internal/types"
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

// PrintSuggestedTitles outputs the job titles chosen for the search.
func (p *Printer) PrintSuggestedTitles(titles []string) {
	if len(titles) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Searching %d titles:\n\n", len(titles)))

	count := min(len(titles), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", titles[i]))
	}
	if len(titles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(titles)-maxItemsToShow))
	}

	p.printBox("SUGGESTED JOB TITLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSourceCounts outputs how many listings each source contributed and
// which sources failed.
func (p *Printer) PrintSourceCounts(counts map[string]int, failures map[string]error) {
	if len(counts) == 0 && len(failures) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-14s %d listings\n", name, counts[name]))
	}

	if len(failures) > 0 {
		failed := make([]string, 0, len(failures))
		for name := range failures {
			failed = append(failed, name)
		}
		sort.Strings(failed)

		sb.WriteString("\n")
		for _, name := range failed {
			msg := failures[name].Error()
			if len(msg) > 40 {
				msg = msg[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s: %s\n", name, msg))
		}
	}

	p.printBox("SOURCE RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the final run summary with the output file path.
func (p *Printer) PrintSummary(table types.Table, path string, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Listings: %d\n", len(table)))
	sb.WriteString(fmt.Sprintf("Elapsed:  %s\n", elapsed.Round(time.Second)))
	sb.WriteString(fmt.Sprintf("Output:   %s", path))

	p.printBox("RUN COMPLETE", sb.String())
}
