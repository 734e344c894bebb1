// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/career-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxGapsToShow is the number of gap skills displayed per match
	maxGapsToShow = 5
)

// Printer handles formatted output for CLI runs.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSkills outputs the candidate's skill set.
func (p *Printer) PrintSkills(candidate []string) {
	if len(candidate) == 0 {
		return
	}
	p.printBox("CANDIDATE SKILLS", strings.Join(candidate, ", "))
}

// PrintReport outputs a human-readable summary of a match report.
func (p *Printer) PrintReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	if len(report.Matches) == 0 {
		message := report.Report
		if message == "" {
			message = "No matches."
		}
		p.printBox("MATCH REPORT", message)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched jobs: %d\n", len(report.Matches)))

	for i, match := range report.Matches {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, match.Title))
		if match.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", match.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Match score: %d%%\n", match.MatchScore))

		if len(match.SkillGaps) == 0 {
			sb.WriteString("    No skill gaps.\n")
			continue
		}

		gaps := match.SkillGaps
		if len(gaps) > maxGapsToShow {
			gaps = gaps[:maxGapsToShow]
		}
		sb.WriteString(fmt.Sprintf("    Gaps: %s", strings.Join(gaps, ", ")))
		if len(match.SkillGaps) > maxGapsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(match.SkillGaps)-maxGapsToShow))
		}
		sb.WriteString("\n")

		for _, resource := range match.LearningPlan {
			sb.WriteString(fmt.Sprintf("    • %s: %s\n", resource.Skill, resource.Suggestion))
		}
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
