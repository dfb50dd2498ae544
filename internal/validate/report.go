package validate

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/thomasahle/testplan-data/internal/domain"
)

// Status markers for the console report
var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

// Report aggregates validation results in check order.
// It is rebuilt fresh on every run and owns its result list exclusively.
type Report struct {
	Results []domain.Result

	// EntriesChecked is the number of manifest entries processed
	EntriesChecked int

	counts map[domain.Status]int
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{
		counts: make(map[domain.Status]int),
	}
}

// Add appends one result
func (r *Report) Add(res domain.Result) {
	r.Results = append(r.Results, res)
	r.counts[res.Status]++
}

// Count returns the number of results with the given status
func (r *Report) Count(status domain.Status) int {
	return r.counts[status]
}

// AllPassed reports whether the run contained no failing result.
// Warnings do not fail the run; this is the sole input to the exit code.
func (r *Report) AllPassed() bool {
	return r.counts[domain.StatusFail] == 0
}

// Render writes the consolidated human-readable report.
// Pass and Skipped lines appear only in verbose mode; Fail and Warning
// lines always appear.
func (r *Report) Render(w io.Writer, verbose bool) {
	fmt.Fprintln(w, headStyle.Render("Validation Report"))

	for _, res := range r.Results {
		if !verbose && !res.Failed() && res.Status != domain.StatusWarning {
			continue
		}
		line := fmt.Sprintf("  %s %s [%s]", marker(res.Status), res.EntryPath, res.Kind)
		if res.Detail != "" {
			line += ": " + res.Detail
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nEntries checked: %d\n", r.EntriesChecked)
	fmt.Fprintf(w, "  %s pass: %d  %s fail: %d  %s warning: %d  %s skipped: %d\n",
		marker(domain.StatusPass), r.Count(domain.StatusPass),
		marker(domain.StatusFail), r.Count(domain.StatusFail),
		marker(domain.StatusWarning), r.Count(domain.StatusWarning),
		marker(domain.StatusSkipped), r.Count(domain.StatusSkipped))

	if r.AllPassed() {
		fmt.Fprintln(w, passStyle.Render("All checks passed"))
	} else {
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("%d check(s) failed", r.Count(domain.StatusFail))))
	}
}

func marker(status domain.Status) string {
	switch status {
	case domain.StatusPass:
		return passStyle.Render("✓")
	case domain.StatusFail:
		return failStyle.Render("✗")
	case domain.StatusWarning:
		return warnStyle.Render("!")
	default:
		return skipStyle.Render("-")
	}
}
