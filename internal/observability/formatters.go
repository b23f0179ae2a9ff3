// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-aggregator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of listings shown per source
	maxItemsToShow = 5
)

// Printer handles formatted output for the search command
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintSummary outputs the number of listings per source, in source order.
func (p *Printer) PrintSummary(skill string, listings []types.JobListing) {
	counts := countBySource(listings)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill:    %s\n", skill))
	sb.WriteString(fmt.Sprintf("Listings: %d\n\n", len(listings)))
	for _, source := range types.Sources() {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", source, counts[source]))
	}

	p.printBox("JOB SEARCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListings outputs up to maxItemsToShow listings per source. Sources
// without listings are skipped.
func (p *Printer) PrintListings(listings []types.JobListing) {
	if len(listings) == 0 {
		p.printBox("LISTINGS", "No listings found")
		return
	}

	bySource := make(map[types.Source][]types.JobListing)
	for _, l := range listings {
		bySource[l.Source] = append(bySource[l.Source], l)
	}

	for _, source := range types.Sources() {
		group := bySource[source]
		if len(group) == 0 {
			continue
		}

		var sb strings.Builder
		count := min(len(group), maxItemsToShow)
		for i := 0; i < count; i++ {
			l := group[i]
			sb.WriteString(fmt.Sprintf("• %s\n", l.Title))
			sb.WriteString(fmt.Sprintf("  %s · %s\n", l.Company, l.Location))
			sb.WriteString(fmt.Sprintf("  %s\n", l.ApplyLink))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(group) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(group)-maxItemsToShow))
		}
		sb.WriteString(fmt.Sprintf("\nMore: %s", group[0].Fallback))

		p.printBox(strings.ToUpper(string(source)), sb.String())
	}
}

func countBySource(listings []types.JobListing) map[types.Source]int {
	counts := make(map[types.Source]int)
	for _, l := range listings {
		counts[l.Source]++
	}
	return counts
}
