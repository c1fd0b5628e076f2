package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kolah/oasgate/internal/stats"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	accent  = lipgloss.Color("#D97706") // amber
)

// WriteSummary writes the run counters as one line. Colours are only used
// when w is a terminal.
func WriteSummary(w io.Writer, c stats.Counts) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(accent)
	plain := r.NewStyle()

	pick := func(n int, color lipgloss.Color) lipgloss.Style {
		if n == 0 {
			return plain
		}
		return r.NewStyle().Foreground(color)
	}

	parts := []string{
		plain.Render(fmt.Sprintf("Total Files Processed: %d", c.Total)),
		pick(c.Succeeded, success).Render(fmt.Sprintf("Total Successful Files Count %d", c.Succeeded)),
		pick(c.Failed, danger).Render(fmt.Sprintf("Total Failed Files Count: %d", c.Failed)),
		pick(c.Malformed, danger).Render(fmt.Sprintf("Total Malformed Swagger File Count: %d", c.Malformed)),
		pick(c.PartiallyPassed, warning).Render(fmt.Sprintf("Total Partially Passed File Count: %d", c.PartiallyPassed)),
	}

	_, err := fmt.Fprintf(w, "%s %s\n", header.Render("Summary ---"), strings.Join(parts, ". "))
	return err
}
